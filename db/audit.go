package db

import (
	"context"
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
)

func InsertAuditLog(ctx context.Context, entry *dbtypes.AuditLog) error {
	_, err := WriterDb.ExecContext(ctx, `
		INSERT INTO audit_log (
			session_id, role, method, route, status_code, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.SessionID, entry.Role, entry.Method, entry.Route, entry.StatusCode, entry.Details, entry.CreatedAt)
	return err
}

func GetAuditLogs(ctx context.Context, offset, limit int) ([]*dbtypes.AuditLog, error) {
	entries := []*dbtypes.AuditLog{}
	err := ReaderDb.SelectContext(ctx, &entries, `
		SELECT id, session_id, role, method, route, status_code, details, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodeAuditDetails unpacks the free-form details column into a typed
// struct for rendering. Entries without details decode to the zero value.
func DecodeAuditDetails(entry *dbtypes.AuditLog, returnValue interface{}) error {
	if entry.Details == "" {
		return nil
	}
	details := map[string]interface{}{}
	if err := json.Unmarshal([]byte(entry.Details), &details); err != nil {
		return err
	}
	return mapstructure.Decode(details, returnValue)
}
