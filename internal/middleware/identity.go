package middleware

import (
	"context"
	"net/http"

	"venture-hub/internal/identity"
)

const identityKey ctxKey = "identity"

// IdentityResolver arma el AuthContext de dominio a partir del user id verificado.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) identity.AuthContext
}

// Identity corre después de AuthContext. Sin claims deja el request como anónimo.
func Identity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac := identity.Anonymous
			if claims, ok := GetClaims(r.Context()); ok && resolver != nil {
				ac = resolver.Resolve(r.Context(), claims.UserID)
			}
			ctx := context.WithValue(r.Context(), identityKey, ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuth nunca falla: si el middleware no corrió devuelve identity.Anonymous.
func GetAuth(ctx context.Context) identity.AuthContext {
	if ac, ok := ctx.Value(identityKey).(identity.AuthContext); ok {
		return ac
	}
	return identity.Anonymous
}

// WithAuth inyecta un AuthContext ya resuelto (tests de handlers).
func WithAuth(ctx context.Context, ac identity.AuthContext) context.Context {
	return context.WithValue(ctx, identityKey, ac)
}
