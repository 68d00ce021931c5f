package privatedata

import (
	"context"
	"time"

	"venture-hub/internal/access"
)

// Row es la forma persistida de un Record: el documento viaja como JSON.
type Row struct {
	StartupID string
	Section   access.Section
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	// GetOrCreate inserta def si no hay fila para (startup, section) y devuelve la vigente.
	// Dos llamadas concurrentes terminan leyendo la misma fila.
	GetOrCreate(ctx context.Context, def Row) (Row, error)
	// Save reemplaza el documento completo (last write wins).
	Save(ctx context.Context, row Row) error
}
