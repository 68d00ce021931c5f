package postgres

import (
	"context"
	"database/sql"
	"time"

	"venture-hub/internal/access"
	"venture-hub/internal/domain/audit"

	"github.com/jmoiron/sqlx"
)

// AuditRepo es append-only: no expone update ni delete.
type AuditRepo struct {
	db *sqlx.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: sqlx.NewDb(db, "pgx")}
}

type auditRow struct {
	ID             string    `db:"id"`
	InvestorUserID string    `db:"investor_user_id"`
	StartupID      string    `db:"startup_id"`
	Section        string    `db:"section"`
	AccessedAt     time.Time `db:"accessed_at"`
	IPAddress      string    `db:"ip_address"`
	UserAgent      string    `db:"user_agent"`
}

func (r *AuditRepo) Append(ctx context.Context, e audit.Entry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO access_audit_log (id, investor_user_id, startup_id, section, accessed_at, ip_address, user_agent)
		VALUES (:id, :investor_user_id, :startup_id, :section, :accessed_at, :ip_address, :user_agent)
	`, auditRow{
		ID:             e.ID,
		InvestorUserID: e.InvestorUserID,
		StartupID:      e.StartupID,
		Section:        string(e.Section),
		AccessedAt:     e.AccessedAt.UTC(),
		IPAddress:      e.IPAddress,
		UserAgent:      e.UserAgent,
	})
	return err
}

func (r *AuditRepo) ListByStartup(ctx context.Context, startupID string, f audit.Filter) ([]audit.Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = audit.MaxLimit
	}

	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, investor_user_id, startup_id, section, accessed_at, ip_address, user_agent
		FROM access_audit_log
		WHERE startup_id = $1 AND ($2 = '' OR section = $2)
		ORDER BY accessed_at DESC, id DESC
		LIMIT $3
	`, startupID, string(f.Section), limit); err != nil {
		return nil, err
	}

	out := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, audit.Entry{
			ID:             row.ID,
			InvestorUserID: row.InvestorUserID,
			StartupID:      row.StartupID,
			Section:        access.Section(row.Section),
			AccessedAt:     row.AccessedAt,
			IPAddress:      row.IPAddress,
			UserAgent:      row.UserAgent,
		})
	}
	return out, nil
}
