package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"venture-hub/internal/domain/startups"
)

type StartupsRepo struct {
	db *sql.DB
}

func NewStartupsRepo(db *sql.DB) *StartupsRepo {
	return &StartupsRepo{db: db}
}

func (r *StartupsRepo) Create(ctx context.Context, s startups.Startup) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO startups (
			id, founder_user_id,
			company_name, tagline, description, stage, website,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID,
		s.FounderUserID,
		s.CompanyName,
		s.Tagline,
		s.Description,
		string(s.Stage),
		s.Website,
		s.CreatedAt.UTC(),
		s.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return startups.ErrAlreadyExists
	}
	return err
}

func (r *StartupsRepo) GetByID(ctx context.Context, id string) (startups.Startup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return startups.Startup{}, startups.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *StartupsRepo) GetByFounder(ctx context.Context, founderUserID string) (startups.Startup, error) {
	return r.getOne(ctx, `WHERE founder_user_id = $1`, founderUserID)
}

func (r *StartupsRepo) getOne(ctx context.Context, where string, args ...any) (startups.Startup, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, founder_user_id,
			company_name, tagline, description, stage, website,
			created_at, updated_at
		FROM startups `+where, args...)

	var s startups.Startup
	var stage string
	if err := row.Scan(
		&s.ID,
		&s.FounderUserID,
		&s.CompanyName,
		&s.Tagline,
		&s.Description,
		&stage,
		&s.Website,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return startups.Startup{}, startups.ErrNotFound
		}
		return startups.Startup{}, err
	}
	s.Stage = startups.Stage(stage)
	return s, nil
}
