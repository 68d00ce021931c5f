package postgres

import (
	"context"
	"database/sql"
	"time"

	"venture-hub/internal/access"
	"venture-hub/internal/domain/privatedata"

	"github.com/jmoiron/sqlx"
)

type PrivateDataRepo struct {
	db *sqlx.DB
}

func NewPrivateDataRepo(db *sql.DB) *PrivateDataRepo {
	return &PrivateDataRepo{db: sqlx.NewDb(db, "pgx")}
}

type sectionRow struct {
	StartupID string    `db:"startup_id"`
	Section   string    `db:"section"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetOrCreate: el INSERT ... ON CONFLICT DO NOTHING hace que dos lecturas concurrentes
// terminen en la misma fila.
func (r *PrivateDataRepo) GetOrCreate(ctx context.Context, def privatedata.Row) (privatedata.Row, error) {
	if _, err := r.db.NamedExecContext(ctx, `
		INSERT INTO private_sections (startup_id, section, data, created_at, updated_at)
		VALUES (:startup_id, :section, CAST(:data AS jsonb), :created_at, :updated_at)
		ON CONFLICT (startup_id, section) DO NOTHING
	`, toSectionRow(def)); err != nil {
		return privatedata.Row{}, err
	}

	var out sectionRow
	if err := r.db.GetContext(ctx, &out, `
		SELECT startup_id, section, data::text AS data, created_at, updated_at
		FROM private_sections
		WHERE startup_id = $1 AND section = $2
	`, def.StartupID, string(def.Section)); err != nil {
		return privatedata.Row{}, err
	}
	return fromSectionRow(out), nil
}

func (r *PrivateDataRepo) Save(ctx context.Context, row privatedata.Row) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO private_sections (startup_id, section, data, created_at, updated_at)
		VALUES (:startup_id, :section, CAST(:data AS jsonb), :created_at, :updated_at)
		ON CONFLICT (startup_id, section) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`, toSectionRow(row))
	return err
}

func toSectionRow(row privatedata.Row) sectionRow {
	return sectionRow{
		StartupID: row.StartupID,
		Section:   string(row.Section),
		Data:      string(row.Data),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func fromSectionRow(row sectionRow) privatedata.Row {
	return privatedata.Row{
		StartupID: row.StartupID,
		Section:   access.Section(row.Section),
		Data:      []byte(row.Data),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
