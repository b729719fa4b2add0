package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-scheduler/internal/ports/storage"
)

var (
	ErrSessionRequired = errors.New("session id required")
)

// Schema de la tabla clave/valor por sesión.
const Schema = `
CREATE TABLE IF NOT EXISTS session_entries (
	session_id TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (session_id, key)
)`

type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

var _ storage.KV = (*KV)(nil)

// EnsureSchema crea la tabla si no existe (idempotente).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

func (r *KV) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", false, ErrSessionRequired
	}

	var v string
	err := r.db.QueryRowContext(ctx, `
		SELECT value
		FROM session_entries
		WHERE session_id = $1 AND key = $2
	`, sessionID, key).Scan(&v)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (r *KV) Set(ctx context.Context, sessionID, key, value string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionRequired
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_entries (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, sessionID, key, value)
	return err
}

func (r *KV) Remove(ctx context.Context, sessionID, key string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionRequired
	}

	// 0 filas afectadas no es error: borrar algo inexistente es no-op.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM session_entries
		WHERE session_id = $1 AND key = $2
	`, sessionID, key)
	return err
}

func (r *KV) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionRequired
	}

	_, err := r.db.ExecContext(ctx, `
		DELETE FROM session_entries
		WHERE session_id = $1
	`, sessionID)
	return err
}
