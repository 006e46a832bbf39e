package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieClaims is the JWT payload carried by the browser session cookie.
// The cookie never holds the upstream bearer token, only the session id.
type SessionCookieClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the server-held session state resolved per request.
type Session struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
