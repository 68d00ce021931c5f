package middleware

import (
	"context"
	"net/http"
	"strings"

	"venture-hub/internal/platform/logger"
	"venture-hub/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader solo se lee cuando no hay verifier (AUTH_MODE=dev).
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext deja los claims del caller en el contexto:
//   - verifier != nil: Authorization: Bearer <token> pasa por Verify.
//   - verifier == nil: modo dev, el user id llega en X-Debug-User-ID.
//
// Un token ausente o inválido no corta el request: sigue como anónimo y cada handler
// decide entre 401 y una vista pública.
func AuthContext(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug("bearer token rejected", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"error":      err,
				})
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func withClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
