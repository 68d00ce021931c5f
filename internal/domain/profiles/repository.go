package profiles

import (
	"context"

	"venture-hub/internal/identity"
)

type Repository interface {
	// Upsert crea o reemplaza el perfil del usuario.
	Upsert(ctx context.Context, p identity.Profile) error
	GetByUserID(ctx context.Context, userID string) (identity.Profile, error)
}
