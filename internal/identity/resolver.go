package identity

import (
	"context"
	"strings"
)

// ProfileLookup y OwnedStartupLookup evitan importar los paquetes de dominio (rompe ciclos).
type ProfileLookup interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
}

type OwnedStartupLookup interface {
	StartupIDOfFounder(ctx context.Context, founderUserID string) (string, error)
}

// Resolver arma el AuthContext a partir del user id verificado por el middleware de auth.
type Resolver struct {
	profiles ProfileLookup
	startups OwnedStartupLookup
}

func NewResolver(profiles ProfileLookup, startups OwnedStartupLookup) *Resolver {
	return &Resolver{profiles: profiles, startups: startups}
}

// Resolve nunca falla: si no hay perfil o startup, el campo queda vacío.
func (r *Resolver) Resolve(ctx context.Context, userID string) AuthContext {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Anonymous
	}

	ac := AuthContext{UserID: userID}
	if r == nil || r.profiles == nil {
		return ac
	}

	p, err := r.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return ac
	}
	ac.Profile = &p

	if p.UserType == UserTypeFounder && r.startups != nil {
		if id, err := r.startups.StartupIDOfFounder(ctx, userID); err == nil {
			ac.OwnedStartupID = id
		}
	}
	return ac
}
