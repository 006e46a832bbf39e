package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/zeonixpay/zeonix-dashboard/types"
)

var logger = logrus.StandardLogger().WithField("module", "upstream")

var requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "zeonix_upstream_request_count",
	Help: "Number of upstream API requests by result class",
}, []string{"result"})

const DefaultTimeout = 10 * time.Second

// Client is the bearer-authenticated HTTP client for the ZeonixPay API.
// It issues exactly one request per call and never retries.
type Client struct {
	endpoint        string
	headers         map[string]string
	defaultPageSize int
	httpClient      *nethttp.Client
}

// NewClient is used to create a new upstream API client
func NewClient(endpoint string, headers map[string]string, timeout time.Duration, defaultPageSize int) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &Client{
		endpoint:        strings.TrimSuffix(endpoint, "/"),
		headers:         headers,
		defaultPageSize: defaultPageSize,
		httpClient:      &nethttp.Client{Timeout: timeout},
	}
}

func (c *Client) DefaultPageSize() int {
	return c.defaultPageSize
}

// GetJSON issues one GET against the upstream API and decodes the JSON body
// into returnValue. Network failures and 5xx responses map to *OutageError,
// 4xx responses to *APIError with the raw body attached.
func (c *Client) GetJSON(ctx context.Context, token, path string, query url.Values, returnValue interface{}) error {
	if token == "" {
		return ErrNoToken
	}

	requrl := c.endpoint + path
	if len(query) > 0 {
		requrl = fmt.Sprintf("%v?%v", requrl, query.Encode())
	}

	t0 := time.Now()
	defer func() {
		logger.Debugf("API GET call: %v [%v ms]", requrl, time.Since(t0).Milliseconds())
	}()

	req, err := nethttp.NewRequestWithContext(ctx, "GET", requrl, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestCount.WithLabelValues("outage").Inc()
		return &OutageError{URL: requrl, Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requrl); err != nil {
		return err
	}
	requestCount.WithLabelValues("ok").Inc()

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(returnValue); err != nil {
		return fmt.Errorf("error parsing json response from %v: %v", requrl, err)
	}
	return nil
}

// ProxyResponse carries an upstream mutation response for verbatim
// passthrough to the browser.
type ProxyResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Do forwards one mutating request to the upstream API and returns the
// response for passthrough. The upstream status and body are returned even
// for 4xx/5xx responses; only transport-level failures yield an error.
func (c *Client) Do(ctx context.Context, token, method, path string, body io.Reader, contentType string) (*ProxyResponse, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	requrl := c.endpoint + path
	req, err := nethttp.NewRequestWithContext(ctx, method, requrl, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestCount.WithLabelValues("outage").Inc()
		return nil, &OutageError{URL: requrl, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		requestCount.WithLabelValues("outage").Inc()
		return nil, &OutageError{URL: requrl, Err: err}
	}

	if resp.StatusCode >= 500 {
		requestCount.WithLabelValues("outage").Inc()
	} else if resp.StatusCode >= 400 {
		requestCount.WithLabelValues("client_error").Inc()
	} else {
		requestCount.WithLabelValues("ok").Inc()
	}

	return &ProxyResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}

// Login exchanges credentials with the upstream auth endpoint. Session
// issuance stays upstream; the dashboard only stores what comes back.
func (c *Client) Login(ctx context.Context, username, password string) (*types.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	requrl := c.endpoint + "/api/v1/auth/login"
	req, err := nethttp.NewRequestWithContext(ctx, "POST", requrl, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestCount.WithLabelValues("outage").Inc()
		return nil, &OutageError{URL: requrl, Err: err}
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, requrl); err != nil {
		return nil, err
	}
	requestCount.WithLabelValues("ok").Inc()

	result := &types.LoginResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("error parsing login response: %v", err)
	}
	return result, nil
}

func (c *Client) setHeaders(req *nethttp.Request, token string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	for headerKey, headerVal := range c.headers {
		req.Header.Set(headerKey, headerVal)
	}
}

func (c *Client) checkStatus(resp *nethttp.Response, requrl string) error {
	if resp.StatusCode >= 500 {
		requestCount.WithLabelValues("outage").Inc()
		return &OutageError{URL: requrl, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode >= 400 {
		requestCount.WithLabelValues("client_error").Inc()
		body, _ := io.ReadAll(resp.Body)
		logger.Debugf("API error %v: %s", resp.StatusCode, body)
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}
	return nil
}

// FetchList fetches one page of a collection endpoint. The query carries
// only the present filters plus explicit page and page_size; the envelope
// is trusted verbatim.
func FetchList[T any](ctx context.Context, client *Client, token, path string, query url.Values) (*types.ListEnvelope[T], error) {
	envelope := &types.ListEnvelope[T]{}
	if err := client.GetJSON(ctx, token, path, query, envelope); err != nil {
		return nil, err
	}

	// the envelope status flag duplicates the HTTP status; log disagreements
	// but keep the HTTP status authoritative
	if !envelope.Status {
		logger.Warnf("list envelope from %v reports status=false on a 2xx response", path)
	}
	return envelope, nil
}
