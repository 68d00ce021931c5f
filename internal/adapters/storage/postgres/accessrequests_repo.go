package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"venture-hub/internal/domain/accessrequests"
)

type AccessRequestsRepo struct {
	db *sql.DB
	q  querier

	// inTx: las lecturas toman lock de fila (SELECT ... FOR UPDATE).
	inTx bool
}

func NewAccessRequestsRepo(db *sql.DB) *AccessRequestsRepo {
	return &AccessRequestsRepo{db: db, q: db}
}

const accessRequestColumns = `
	id, investor_user_id, startup_id, status, message,
	reviewed_by, review_message,
	requested_at, reviewed_at, expires_at, revoked_at, updated_at`

func (r *AccessRequestsRepo) Create(ctx context.Context, req accessrequests.Request) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO access_requests (`+accessRequestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		req.ID,
		req.InvestorUserID,
		req.StartupID,
		string(req.Status),
		req.Message,
		req.ReviewedBy,
		req.ReviewMessage,
		req.RequestedAt.UTC(),
		toNullTime(req.ReviewedAt),
		toNullTime(req.ExpiresAt),
		toNullTime(req.RevokedAt),
		req.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return accessrequests.ErrDuplicate
	}
	return err
}

// Update no toca el par (investor, startup).
func (r *AccessRequestsRepo) Update(ctx context.Context, req accessrequests.Request) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE access_requests
		SET
			status = $2,
			message = $3,
			reviewed_by = $4,
			review_message = $5,
			requested_at = $6,
			reviewed_at = $7,
			expires_at = $8,
			revoked_at = $9,
			updated_at = $10
		WHERE id = $1
	`,
		req.ID,
		string(req.Status),
		req.Message,
		req.ReviewedBy,
		req.ReviewMessage,
		req.RequestedAt.UTC(),
		toNullTime(req.ReviewedAt),
		toNullTime(req.ExpiresAt),
		toNullTime(req.RevokedAt),
		req.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return accessrequests.ErrNotFound
	}
	return nil
}

func (r *AccessRequestsRepo) GetByID(ctx context.Context, id string) (accessrequests.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accessrequests.Request{}, accessrequests.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *AccessRequestsRepo) GetByPair(ctx context.Context, investorUserID, startupID string) (accessrequests.Request, error) {
	return r.getOne(ctx, `WHERE investor_user_id = $1 AND startup_id = $2`, investorUserID, startupID)
}

func (r *AccessRequestsRepo) ListByStartup(ctx context.Context, startupID string) ([]accessrequests.Request, error) {
	return r.list(ctx, `WHERE startup_id = $1`, startupID)
}

func (r *AccessRequestsRepo) ListByInvestor(ctx context.Context, investorUserID string) ([]accessrequests.Request, error) {
	return r.list(ctx, `WHERE investor_user_id = $1`, investorUserID)
}

// InTx corre fn en una transacción. Un InTx anidado reutiliza la transacción actual.
func (r *AccessRequestsRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx accessrequests.Repository) error) error {
	if r.inTx {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	txRepo := &AccessRequestsRepo{db: r.db, q: tx, inTx: true}

	if err := fn(ctx, txRepo); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return accessrequests.ErrDuplicate
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *AccessRequestsRepo) getOne(ctx context.Context, where string, args ...any) (accessrequests.Request, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_requests ` + where
	if r.inTx {
		query += ` FOR UPDATE`
	}

	req, err := scanAccessRequest(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accessrequests.Request{}, accessrequests.ErrNotFound
		}
		return accessrequests.Request{}, err
	}
	return req, nil
}

func (r *AccessRequestsRepo) list(ctx context.Context, where string, args ...any) ([]accessrequests.Request, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+accessRequestColumns+`
		FROM access_requests `+where+`
		ORDER BY requested_at DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]accessrequests.Request, 0)
	for rows.Next() {
		req, err := scanAccessRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccessRequest(row rowScanner) (accessrequests.Request, error) {
	var (
		req        accessrequests.Request
		status     string
		reviewedAt sql.NullTime
		expiresAt  sql.NullTime
		revokedAt  sql.NullTime
	)
	if err := row.Scan(
		&req.ID,
		&req.InvestorUserID,
		&req.StartupID,
		&status,
		&req.Message,
		&req.ReviewedBy,
		&req.ReviewMessage,
		&req.RequestedAt,
		&reviewedAt,
		&expiresAt,
		&revokedAt,
		&req.UpdatedAt,
	); err != nil {
		return accessrequests.Request{}, err
	}
	req.Status = accessrequests.Status(status)
	req.ReviewedAt = fromNullTime(reviewedAt)
	req.ExpiresAt = fromNullTime(expiresAt)
	req.RevokedAt = fromNullTime(revokedAt)
	return req, nil
}
