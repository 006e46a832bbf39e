package db

import (
	"context"
	"time"

	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
)

func InsertSession(ctx context.Context, session *dbtypes.Session) error {
	_, err := WriterDb.ExecContext(ctx, EngineQuery(map[dbtypes.DBEngineType]string{
		dbtypes.DBEnginePgsql: `
			INSERT INTO sessions (
				id, role, token, created_at, expires_at
			) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET role = excluded.role,
				token = excluded.token,
				expires_at = excluded.expires_at;`,
		dbtypes.DBEngineSqlite: `
			INSERT OR REPLACE INTO sessions (
				id, role, token, created_at, expires_at
			) VALUES ($1, $2, $3, $4, $5)`,
	}),
		session.ID, session.Role, session.Token, session.CreatedAt, session.ExpiresAt)
	return err
}

func GetSession(ctx context.Context, id string) (*dbtypes.Session, error) {
	session := &dbtypes.Session{}
	err := ReaderDb.GetContext(ctx, session, `
		SELECT id, role, token, created_at, expires_at
		FROM sessions
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(ctx context.Context, id string) error {
	_, err := WriterDb.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// CleanupSessions drops expired session rows and returns the removed count.
func CleanupSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := WriterDb.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
