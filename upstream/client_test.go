package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/zeonixpay/zeonix-dashboard/types"
)

func TestFetchListEnvelope(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": true,
			"count": 25,
			"next": "?page=2",
			"previous": null,
			"data": [
				{"id":1,"trx_id":"TRX1","amount":"100.50","pay_status":"success"},
				{"id":2,"trx_id":"TRX2","amount":"75.00","pay_status":"pending"},
				{"id":3,"trx_id":"TRX3","amount":"10.00","pay_status":"failed"},
				{"id":4,"trx_id":"TRX4","amount":"10.00","pay_status":"failed"},
				{"id":5,"trx_id":"TRX5","amount":"10.00","pay_status":"failed"},
				{"id":6,"trx_id":"TRX6","amount":"10.00","pay_status":"failed"},
				{"id":7,"trx_id":"TRX7","amount":"10.00","pay_status":"failed"},
				{"id":8,"trx_id":"TRX8","amount":"10.00","pay_status":"failed"},
				{"id":9,"trx_id":"TRX9","amount":"10.00","pay_status":"failed"},
				{"id":10,"trx_id":"TRX10","amount":"10.00","pay_status":"failed"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, 10)
	query := url.Values{}
	query.Set("page", "1")
	query.Set("page_size", "10")
	query.Set("pay_status", "pending")

	envelope, err := FetchList[types.Deposit](context.Background(), client, "test-token", "/api/v1/merchant/deposits", query)
	if err != nil {
		t.Fatalf("FetchList returned error: %v", err)
	}

	if envelope.Count != 25 {
		t.Errorf("Count = %v, expected 25", envelope.Count)
	}
	if len(envelope.Data) != 10 {
		t.Errorf("len(Data) = %v, expected 10", len(envelope.Data))
	}
	if envelope.Previous != nil {
		t.Errorf("Previous = %v, expected nil on first page", *envelope.Previous)
	}
	if envelope.Next == nil {
		t.Error("Next = nil, expected non-nil cursor")
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if gotQuery.Get("pay_status") != "pending" || gotQuery.Get("page") != "1" || gotQuery.Get("page_size") != "10" {
		t.Errorf("unexpected upstream query: %v", gotQuery)
	}
}

func TestFetchListNoToken(t *testing.T) {
	client := NewClient("http://upstream.invalid", nil, 0, 10)
	_, err := FetchList[types.Deposit](context.Background(), client, "", "/api/v1/merchant/deposits", nil)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
}

func TestFetchListOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, 10)
	_, err := FetchList[types.Deposit](context.Background(), client, "tok", "/api/v1/merchant/deposits", nil)
	if !IsOutage(err) {
		t.Errorf("expected outage error on 503, got %v", err)
	}

	// connection failure is the same outage class
	dead := NewClient("http://127.0.0.1:1", nil, 0, 10)
	_, err = FetchList[types.Deposit](context.Background(), dead, "tok", "/api/v1/merchant/deposits", nil)
	if !IsOutage(err) {
		t.Errorf("expected outage error on connection failure, got %v", err)
	}
}

func TestFetchListClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"amount required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, 10)
	_, err := FetchList[types.Deposit](context.Background(), client, "tok", "/api/v1/merchant/deposits", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %v, expected 400", apiErr.StatusCode)
	}
	if apiErr.Message() != "amount required" {
		t.Errorf("Message() = %q, expected %q", apiErr.Message(), "amount required")
	}
	if IsOutage(err) {
		t.Error("4xx must not classify as outage")
	}
}

func TestProxyDoPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PATCH" {
			t.Errorf("method = %v, expected PATCH", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"amount required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, 10)
	resp, err := client.Do(context.Background(), "tok", "PATCH", "/api/v1/merchant/payment-methods/7/set-primary", nil, "")
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %v, expected 400 passthrough", resp.StatusCode)
	}
	if string(resp.Body) != `{"message":"amount required"}` {
		t.Errorf("Body = %s, expected verbatim upstream body", resp.Body)
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"message field", `{"message":"amount required"}`, "amount required"},
		{"error field", `{"error":"bad device key"}`, "bad device key"},
		{"detail field", `{"detail":"not found"}`, "not found"},
		{"probe order", `{"detail":"x","message":"first"}`, "first"},
		{"no known field", `{"code":17}`, "request failed"},
		{"not json", `<html>nope</html>`, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMessage([]byte(tt.body)); got != tt.expected {
				t.Errorf("ExtractMessage(%v) = %q, expected %q", tt.body, got, tt.expected)
			}
		})
	}
}
