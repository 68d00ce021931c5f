package memory

import (
	"context"
	"sync"

	"venture-hub/internal/access"
	"venture-hub/internal/domain/privatedata"
)

type sectionKey struct {
	startupID string
	section   access.Section
}

type privateDataRepo struct {
	mu   sync.RWMutex
	rows map[sectionKey]privatedata.Row
}

func NewPrivateDataRepo() privatedata.Repository {
	return &privateDataRepo{rows: make(map[sectionKey]privatedata.Row)}
}

func (r *privateDataRepo) GetOrCreate(ctx context.Context, def privatedata.Row) (privatedata.Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sectionKey{def.StartupID, def.Section}
	if row, ok := r.rows[key]; ok {
		return cloneRow(row), nil
	}
	r.rows[key] = cloneRow(def)
	return cloneRow(def), nil
}

func (r *privateDataRepo) Save(ctx context.Context, row privatedata.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[sectionKey{row.StartupID, row.Section}] = cloneRow(row)
	return nil
}

// cloneRow evita compartir el slice de bytes con el caller.
func cloneRow(row privatedata.Row) privatedata.Row {
	row.Data = append([]byte(nil), row.Data...)
	return row
}
