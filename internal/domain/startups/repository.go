package startups

import "context"

type Repository interface {
	// Create devuelve ErrAlreadyExists si el founder ya tiene una startup.
	Create(ctx context.Context, s Startup) error
	GetByID(ctx context.Context, id string) (Startup, error)
	GetByFounder(ctx context.Context, founderUserID string) (Startup, error)
}
