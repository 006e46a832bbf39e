package dbtypes

import "time"

type DBEngineType int

const (
	DBEngineAny    DBEngineType = 0
	DBEngineSqlite DBEngineType = 1
	DBEnginePgsql  DBEngineType = 2
)

// Session is a persisted dashboard session row. The upstream bearer token
// lives here; the browser cookie only carries the session id.
type Session struct {
	ID        string    `db:"id"`
	Role      string    `db:"role"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// AuditLog records one proxied mutation against the upstream API.
type AuditLog struct {
	ID         int64     `db:"id"`
	SessionID  string    `db:"session_id"`
	Role       string    `db:"role"`
	Method     string    `db:"method"`
	Route      string    `db:"route"`
	StatusCode int       `db:"status_code"`
	Details    string    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}

// AuditLogDetails is the typed payload stored in the details column.
type AuditLogDetails struct {
	UpstreamPath string `json:"upstream_path" mapstructure:"upstream_path"`
	ContentType  string `json:"content_type,omitempty" mapstructure:"content_type"`
	RequestSize  int64  `json:"request_size,omitempty" mapstructure:"request_size"`
}
