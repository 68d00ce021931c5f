package memory

import (
	"context"
	"errors"
	"sync"

	"venture-hub/internal/domain/startups"
)

type startupsRepo struct {
	mu        sync.RWMutex
	byID      map[string]startups.Startup
	byFounder map[string]string
}

func NewStartupsRepo() startups.Repository {
	return &startupsRepo{
		byID:      make(map[string]startups.Startup),
		byFounder: make(map[string]string),
	}
}

func (r *startupsRepo) Create(ctx context.Context, s startups.Startup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return errors.New("startup id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("startup already exists")
	}
	if _, exists := r.byFounder[s.FounderUserID]; exists {
		return startups.ErrAlreadyExists
	}
	r.byID[s.ID] = s
	r.byFounder[s.FounderUserID] = s.ID
	return nil
}

func (r *startupsRepo) GetByID(ctx context.Context, id string) (startups.Startup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return startups.Startup{}, startups.ErrNotFound
	}
	return s, nil
}

func (r *startupsRepo) GetByFounder(ctx context.Context, founderUserID string) (startups.Startup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byFounder[founderUserID]
	if !ok {
		return startups.Startup{}, startups.ErrNotFound
	}
	return r.byID[id], nil
}
