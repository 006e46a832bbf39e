package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoToken is returned when a fetch is attempted without a resolvable
// bearer token. This is a precondition failure, not a retryable error.
var ErrNoToken = errors.New("no bearer token resolved for session")

// OutageError covers network-level failures, timeouts and upstream 5xx
// responses. Callers treat it as a service outage and redirect to the
// static unavailable page instead of rendering a partial error UI.
type OutageError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *OutageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream outage: %v", e.Err)
	}
	return fmt.Sprintf("upstream outage: status %v from %v", e.StatusCode, e.URL)
}

func (e *OutageError) Unwrap() error {
	return e.Err
}

// IsOutage reports whether err (or anything it wraps) is an upstream outage.
func IsOutage(err error) bool {
	var outage *OutageError
	return errors.As(err, &outage)
}

// APIError carries an upstream 4xx response: status code, status text and
// the raw body, to be rendered by an error page or passed through verbatim.
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error %v: %v", e.StatusCode, e.Message())
}

// Message extracts the human-readable message from the upstream error body
// with a best-effort field probe: message, error, detail, in that order.
func (e *APIError) Message() string {
	return ExtractMessage(e.Body)
}

// ExtractMessage probes a JSON error body for a displayable message text.
// Falls back to a generic string when no known field is present.
func ExtractMessage(body []byte) string {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			var msg string
			if raw, ok := fields[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
				return msg
			}
		}
	}
	return "request failed"
}
