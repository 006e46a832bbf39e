package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var sessionSetupOnce sync.Once

func setupSessionTestEnv(t *testing.T) {
	t.Helper()

	sessionSetupOnce.Do(func() {
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
		if err := StartSessionService(); err != nil {
			panic(err)
		}
	})
}

func TestSessionCreateResolve(t *testing.T) {
	setupSessionTestEnv(t)

	session, cookie, err := GlobalSessionService.CreateSession(context.Background(), "bearer-token-1", "merchant")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	if cookie.Value == "" {
		t.Fatalf("empty session cookie")
	}
	if cookie.Value == session.Token {
		t.Errorf("cookie must not carry the upstream token")
	}

	req := httptest.NewRequest("GET", "/deposits", nil)
	req.AddCookie(cookie)

	resolved, err := GlobalSessionService.ResolveSession(req)
	if err != nil {
		t.Fatalf("error resolving session: %v", err)
	}
	if resolved.Token != "bearer-token-1" {
		t.Errorf("wrong token: got %q", resolved.Token)
	}
	if resolved.Role != "merchant" {
		t.Errorf("wrong role: got %q", resolved.Role)
	}
}

func TestSessionResolveWithoutCookie(t *testing.T) {
	setupSessionTestEnv(t)

	req := httptest.NewRequest("GET", "/deposits", nil)
	if _, err := GlobalSessionService.ResolveSession(req); err != ErrNoSession {
		t.Errorf("wrong error: got %v, want %v", err, ErrNoSession)
	}
}

func TestSessionResolveTamperedCookie(t *testing.T) {
	setupSessionTestEnv(t)

	_, cookie, err := GlobalSessionService.CreateSession(context.Background(), "bearer-token-2", "admin")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}

	req := httptest.NewRequest("GET", "/users", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"})
	if _, err := GlobalSessionService.ResolveSession(req); err != ErrNoSession {
		t.Errorf("wrong error for tampered cookie: got %v, want %v", err, ErrNoSession)
	}
}

func TestSessionDbFallback(t *testing.T) {
	setupSessionTestEnv(t)

	session, cookie, err := GlobalSessionService.CreateSession(context.Background(), "bearer-token-3", "staff")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}

	// drop the cached copy, resolution must fall back to the db row
	GlobalSessionService.store.Delete(session.ID)

	req := httptest.NewRequest("GET", "/deposits", nil)
	req.AddCookie(cookie)
	resolved, err := GlobalSessionService.ResolveSession(req)
	if err != nil {
		t.Fatalf("error resolving session from db: %v", err)
	}
	if resolved.Token != "bearer-token-3" {
		t.Errorf("wrong token after db fallback: got %q", resolved.Token)
	}
}

func TestSessionDestroy(t *testing.T) {
	setupSessionTestEnv(t)

	_, cookie, err := GlobalSessionService.CreateSession(context.Background(), "bearer-token-4", "merchant")
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	GlobalSessionService.DestroySession(context.Background(), rec, req)

	resolveReq := httptest.NewRequest("GET", "/deposits", nil)
	resolveReq.AddCookie(cookie)
	if _, err := GlobalSessionService.ResolveSession(resolveReq); err != ErrNoSession {
		t.Errorf("session still resolvable after destroy: %v", err)
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("destroy did not expire the cookie")
	}
}
