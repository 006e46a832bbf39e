package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
)

func TestDepositsClampRedirect(t *testing.T) {
	// page 999 of a 25 row set: the upstream answers with an empty last
	// page and the handler must issue one silent redirect to page 3
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":true,"count":25,"next":null,"previous":"?page=998","data":[]}`))
	}))
	defer srv.Close()

	prevClient := upstream.GlobalClient
	upstream.GlobalClient = upstream.NewClient(srv.URL, nil, 5*time.Second, 10)
	defer func() { upstream.GlobalClient = prevClient }()

	_, cookie, err := services.GlobalSessionService.CreateSession(context.Background(), "test-token", "merchant")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}

	req := httptest.NewRequest("GET", "/deposits?page=999&pay_status=pending", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	Deposits(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("wrong status code: got %v, want %v", rec.Code, http.StatusFound)
	}

	location, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("invalid redirect location: %v", err)
	}
	if location.Path != "/deposits" || location.Query().Get("page") != "3" {
		t.Errorf("wrong redirect target: %q", rec.Header().Get("Location"))
	}
	if location.Query().Get("pay_status") != "pending" {
		t.Errorf("filter lost in redirect target: %q", rec.Header().Get("Location"))
	}
}
