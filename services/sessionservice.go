package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zeonixpay/zeonix-dashboard/cache"
	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var ErrNoSession = errors.New("no valid session")

var GlobalSessionService *SessionService

// SessionService resolves the upstream bearer token for each request from
// server-held session state. The browser cookie is a signed JWT carrying
// only the session id; tokens live in the session store (tiered cache
// backed by the db) and are never handed to the browser.
type SessionService struct {
	cookieName string
	secret     []byte
	lifetime   time.Duration
	store      *cache.TieredCache
	logger     logrus.FieldLogger
}

// StartSessionService is used to start the global session service
func StartSessionService() error {
	if GlobalSessionService != nil {
		return nil
	}

	sessionCfg := utils.Config.Session
	store, err := cache.NewTieredCache(sessionCfg.LocalCacheSize, sessionCfg.RedisAddr, sessionCfg.RedisPrefix+"session-")
	if err != nil {
		return err
	}

	lifetime := sessionCfg.Lifetime
	if lifetime <= 0 {
		lifetime = 12 * time.Hour
	}

	GlobalSessionService = &SessionService{
		cookieName: sessionCfg.CookieName,
		secret:     []byte(sessionCfg.Secret),
		lifetime:   lifetime,
		store:      store,
		logger:     logrus.StandardLogger().WithField("module", "session"),
	}
	go GlobalSessionService.cleanupLoop()

	return nil
}

// CreateSession stores the upstream login result as a new session and
// returns the cookie to set on the browser.
func (ss *SessionService) CreateSession(ctx context.Context, token, role string) (*types.Session, *http.Cookie, error) {
	now := time.Now()
	session := &types.Session{
		ID:        uuid.New().String(),
		Role:      role,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ss.lifetime),
	}

	err := db.InsertSession(ctx, &dbtypes.Session{
		ID:        session.ID,
		Role:      session.Role,
		Token:     session.Token,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := ss.store.Set(session.ID, session, ss.lifetime); err != nil {
		ss.logger.WithError(err).Warnf("error caching session %v", session.ID)
	}

	cookieValue, err := ss.signCookie(session)
	if err != nil {
		return nil, nil, err
	}

	cookie := &http.Cookie{
		Name:     ss.cookieName,
		Value:    cookieValue,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session, cookie, nil
}

// ResolveSession resolves the caller's session from the request cookie.
// Resolution happens fresh on every request; the store itself is the
// server-held session state.
func (ss *SessionService) ResolveSession(r *http.Request) (*types.Session, error) {
	cookie, err := r.Cookie(ss.cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	claims, err := ss.parseCookie(cookie.Value)
	if err != nil {
		return nil, ErrNoSession
	}

	session := &types.Session{}
	if err := ss.store.Get(claims.SessionID, session); err != nil {
		session, err = ss.loadPersistedSession(r.Context(), claims.SessionID)
		if err != nil {
			return nil, err
		}
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, ErrNoSession
	}
	return session, nil
}

// DestroySession drops the session from all tiers and expires the cookie.
func (ss *SessionService) DestroySession(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(ss.cookieName)
	if err == nil {
		if claims, err := ss.parseCookie(cookie.Value); err == nil {
			ss.store.Delete(claims.SessionID)
			if err := db.DeleteSession(ctx, claims.SessionID); err != nil {
				ss.logger.WithError(err).Warnf("error deleting session %v", claims.SessionID)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ss.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ss *SessionService) loadPersistedSession(ctx context.Context, sessionID string) (*types.Session, error) {
	row, err := db.GetSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			ss.logger.WithError(err).Errorf("error loading session %v", sessionID)
		}
		return nil, ErrNoSession
	}

	session := &types.Session{
		ID:        row.ID,
		Role:      row.Role,
		Token:     row.Token,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if err := ss.store.Set(session.ID, session, time.Until(session.ExpiresAt)); err != nil {
		ss.logger.WithError(err).Warnf("error re-caching session %v", session.ID)
	}
	return session, nil
}

func (ss *SessionService) signCookie(session *types.Session) (string, error) {
	claims := &types.SessionCookieClaims{
		SessionID: session.ID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ss.secret)
}

func (ss *SessionService) parseCookie(value string) (*types.SessionCookieClaims, error) {
	claims := &types.SessionCookieClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return ss.secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrNoSession
	}
	return claims, nil
}

func (ss *SessionService) cleanupLoop() {
	for {
		time.Sleep(10 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		removed, err := db.CleanupSessions(ctx, time.Now())
		cancel()
		if err != nil {
			ss.logger.WithError(err).Error("error cleaning up expired sessions")
		} else if removed > 0 {
			ss.logger.Debugf("removed %v expired sessions", removed)
		}
	}
}
