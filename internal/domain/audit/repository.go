package audit

import "context"

type Repository interface {
	Append(ctx context.Context, e Entry) error
	// ListByStartup devuelve las más recientes primero.
	ListByStartup(ctx context.Context, startupID string, f Filter) ([]Entry, error)
}
