package middleware

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGAuditRecorder persists audit entries to the query_audit_log table.
type PGAuditRecorder struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPGAuditRecorder(pool *pgxpool.Pool) *PGAuditRecorder {
	return &PGAuditRecorder{pool: pool, timeout: 5 * time.Second}
}

func (r *PGAuditRecorder) RecordAccess(entry AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO query_audit_log (user_id, user_roles, entity, action,
			ip_address, user_agent, path, method, request_id, status_code, occurred_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		entry.UserID, entry.UserRoles, entry.Entity, entry.Action,
		entry.IPAddress, entry.UserAgent, entry.Path, entry.Method,
		entry.RequestID, entry.StatusCode, entry.Timestamp)
	return err
}
