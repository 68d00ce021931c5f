package memory

import (
	"context"
	"errors"
	"sync"

	"venture-hub/internal/domain/profiles"
	"venture-hub/internal/identity"
)

type profilesRepo struct {
	mu       sync.RWMutex
	byUserID map[string]identity.Profile
}

func NewProfilesRepo() profiles.Repository {
	return &profilesRepo{byUserID: make(map[string]identity.Profile)}
}

func (r *profilesRepo) Upsert(ctx context.Context, p identity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.UserID == "" {
		return errors.New("user id required")
	}
	r.byUserID[p.UserID] = p
	return nil
}

func (r *profilesRepo) GetByUserID(ctx context.Context, userID string) (identity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUserID[userID]
	if !ok {
		return identity.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}
