package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"venture-hub/internal/domain/audit"
)

type auditRepo struct {
	mu      sync.RWMutex
	entries []audit.Entry
}

func NewAuditRepo() audit.Repository {
	return &auditRepo{}
}

func (r *auditRepo) Append(ctx context.Context, e audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("audit entry id required")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *auditRepo) ListByStartup(ctx context.Context, startupID string, f audit.Filter) ([]audit.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]audit.Entry, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.StartupID != startupID {
			continue
		}
		if f.Section != "" && e.Section != f.Section {
			continue
		}
		out = append(out, e)
	}

	// más recientes primero; en empate queda primero la última agregada
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AccessedAt.After(out[j].AccessedAt)
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
