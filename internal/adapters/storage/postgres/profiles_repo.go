package postgres

import (
	"context"
	"database/sql"
	"errors"

	"venture-hub/internal/domain/profiles"
	"venture-hub/internal/identity"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Upsert(ctx context.Context, p identity.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, user_type, display_name, bio, location, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (user_id) DO UPDATE SET
			user_type = EXCLUDED.user_type,
			display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at
	`,
		p.UserID,
		string(p.UserType),
		p.DisplayName,
		p.Bio,
		p.Location,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return err
}

func (r *ProfilesRepo) GetByUserID(ctx context.Context, userID string) (identity.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, user_type, display_name, bio, location, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID)

	var p identity.Profile
	var userType string
	if err := row.Scan(&p.UserID, &userType, &p.DisplayName, &p.Bio, &p.Location, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Profile{}, profiles.ErrNotFound
		}
		return identity.Profile{}, err
	}
	p.UserType = identity.UserType(userType)
	return p, nil
}
