package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// AuditRepo defines event logging operations used by handlers.
type AuditRepo interface {
	// LogEvent records a dashboard event (login attempt, patient creation).
	LogEvent(ctx context.Context, kind, subject string, meta map[string]any) error
}

// auditRepo is a simple Postgres-backed implementation.
type auditRepo struct {
	pool DBPool
}

func NewAuditRepo(pool DBPool) AuditRepo {
	return &auditRepo{pool: pool}
}

func (a *auditRepo) LogEvent(ctx context.Context, kind, subject string, meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	_, err = a.pool.Exec(ctx,
		`INSERT INTO audit_events (kind, subject, meta) VALUES ($1,$2,$3)`,
		kind, subject, b,
	)
	return err
}
