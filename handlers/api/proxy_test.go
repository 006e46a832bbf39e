package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
	"github.com/zeonixpay/zeonix-dashboard/services"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/upstream"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var setupOnce sync.Once
var upstreamCalls uint64
var upstreamSrv *httptest.Server

func setupTestEnv(t *testing.T) {
	t.Helper()

	setupOnce.Do(func() {
		upstreamSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddUint64(&upstreamCalls, 1)
			switch r.URL.Path {
			case "/api/v1/merchant/withdraw-request":
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"amount required"}`))
			case "/api/v1/merchant/profile":
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":true}`))
			default:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":true}`))
			}
		}))

		cfg := &types.Config{}
		cfg.Session.Secret = "test-secret"
		cfg.Session.CookieName = "zeonix_session"
		cfg.Session.Lifetime = time.Hour
		cfg.Database.Engine = "sqlite"
		cfg.Database.Sqlite = &types.SqliteDatabaseConfig{File: ":memory:"}
		utils.Config = cfg

		db.MustInitDB()
		if err := db.ApplyEmbeddedDbSchema(-2); err != nil {
			panic(err)
		}
		if err := services.StartSessionService(); err != nil {
			panic(err)
		}
		if err := services.StartAuditService(); err != nil {
			panic(err)
		}

		upstream.GlobalClient = upstream.NewClient(upstreamSrv.URL, nil, 5*time.Second, 10)
	})
}

func createTestSession(t *testing.T) *http.Cookie {
	t.Helper()
	_, cookie, err := services.GlobalSessionService.CreateSession(context.Background(), "test-token", "merchant")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	return cookie
}

func TestProxyUnauthorized(t *testing.T) {
	setupTestEnv(t)

	before := atomic.LoadUint64(&upstreamCalls)

	req := httptest.NewRequest("POST", "/api/merchant/withdraw-request", bytes.NewReader([]byte(`{"amount":"10"}`)))
	rec := httptest.NewRecorder()
	APIWithdrawRequestCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong status code: got %v, want %v", rec.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body: %v", err)
	}
	if body["message"] != "Unauthorized" {
		t.Errorf("wrong message: got %q, want %q", body["message"], "Unauthorized")
	}
	if after := atomic.LoadUint64(&upstreamCalls); after != before {
		t.Errorf("upstream was contacted for unauthenticated request")
	}
}

func TestProxyErrorPassthrough(t *testing.T) {
	setupTestEnv(t)
	cookie := createTestSession(t)

	req := httptest.NewRequest("POST", "/api/merchant/withdraw-request", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	APIWithdrawRequestCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrong status code: got %v, want %v", rec.Code, http.StatusBadRequest)
	}
	if body := rec.Body.String(); body != `{"message":"amount required"}` {
		t.Errorf("body not passed through verbatim: got %q", body)
	}
}

func TestProxyAuditTrail(t *testing.T) {
	setupTestEnv(t)
	cookie := createTestSession(t)

	payload := []byte(`{"method_type":"bank","account_number":"12345678"}`)
	req := httptest.NewRequest("POST", "/api/merchant/payment-methods", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	APIPaymentMethodCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("wrong status code: got %v, want %v", rec.Code, http.StatusOK)
	}

	// the audit writer is asynchronous, poll for the entry
	var entry *dbtypes.AuditLog
	for i := 0; i < 100 && entry == nil; i++ {
		entries, err := db.GetAuditLogs(context.Background(), 0, 50)
		if err != nil {
			t.Fatalf("error reading audit log: %v", err)
		}
		for _, candidate := range entries {
			if candidate.Route == "/api/merchant/payment-methods" {
				entry = candidate
				break
			}
		}
		if entry == nil {
			time.Sleep(20 * time.Millisecond)
		}
	}
	if entry == nil {
		t.Fatal("no audit entry recorded for the proxied mutation")
	}

	if entry.Method != "POST" || entry.StatusCode != http.StatusOK || entry.Role != "merchant" {
		t.Errorf("wrong audit entry: %+v", entry)
	}

	details := &dbtypes.AuditLogDetails{}
	if err := db.DecodeAuditDetails(entry, details); err != nil {
		t.Fatalf("error decoding audit details: %v", err)
	}
	if details.UpstreamPath != "/api/v1/merchant/payment-methods" {
		t.Errorf("wrong upstream path in audit details: %q", details.UpstreamPath)
	}
	if details.RequestSize != int64(len(payload)) {
		t.Errorf("wrong request size in audit details: got %v, want %v", details.RequestSize, len(payload))
	}
}

func TestProfileLogoUploadRequiresFilePart(t *testing.T) {
	setupTestEnv(t)
	cookie := createTestSession(t)

	// multipart body without a brand_logo file part
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("brand_name", "Acme")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/profile/update", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	APIProfileUpdate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrong status code: got %v, want %v", rec.Code, http.StatusBadRequest)
	}
}

func TestProfileLogoUploadForwarded(t *testing.T) {
	setupTestEnv(t)
	cookie := createTestSession(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("brand_logo", "logo.png")
	io.WriteString(part, "not-a-real-png")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/profile/update", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	APIProfileUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("wrong status code: got %v, want %v", rec.Code, http.StatusOK)
	}
}

func TestMultipartHasFilePart(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("brand_logo", "logo.png")
	io.WriteString(part, "png-bytes")
	writer.Close()

	if !multipartHasFilePart(buf.Bytes(), writer.FormDataContentType(), "brand_logo") {
		t.Errorf("file part not detected")
	}
	if multipartHasFilePart(buf.Bytes(), writer.FormDataContentType(), "other_field") {
		t.Errorf("unexpected match for missing field")
	}
	if multipartHasFilePart(buf.Bytes(), "application/json", "brand_logo") {
		t.Errorf("unexpected match for non-multipart content type")
	}
}
