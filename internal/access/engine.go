package access

import (
	"context"
	"errors"
	"strings"
	"time"

	"venture-hub/internal/domain/accessrequests"
	"venture-hub/internal/identity"
	"venture-hub/internal/platform/logger"
)

// FounderLookup evita importar el paquete startups (rompe ciclos).
type FounderLookup interface {
	FounderOf(ctx context.Context, startupID string) (string, error)
}

// Ledger es la lectura del ledger que necesita el motor.
type Ledger interface {
	GetForPair(ctx context.Context, investorUserID, startupID string) (accessrequests.Request, error)
}

// Decision es el resultado de un chequeo. AsOwner implica Granted.
type Decision struct {
	Granted bool
	AsOwner bool
}

var deny = Decision{}

// Engine decide si un usuario puede leer las secciones privadas de una startup.
// No guarda estado: cada chequeo vuelve a leer el ledger y compara contra el reloj.
type Engine struct {
	startups FounderLookup
	ledger   Ledger
	log      logger.Logger
	now      func() time.Time
}

func NewEngine(startups FounderLookup, ledger Ledger) *Engine {
	return &Engine{
		startups: startups,
		ledger:   ledger,
		log:      logger.Discard(),
		now:      time.Now,
	}
}

func (e *Engine) WithLogger(l logger.Logger) *Engine {
	if l != nil {
		e.log = l.With(map[string]any{"module": "access"})
	}
	return e
}

func (e *Engine) WithClock(now func() time.Time) *Engine {
	if now != nil {
		e.now = now
	}
	return e
}

// CanAccess nunca falla: la ausencia de datos (o un error de storage) es "deny".
func (e *Engine) CanAccess(ctx context.Context, actor identity.AuthContext, startupID string, section Section) bool {
	return e.Decide(ctx, actor, startupID, section).Granted
}

func (e *Engine) Decide(ctx context.Context, actor identity.AuthContext, startupID string, section Section) Decision {
	if !section.Valid() {
		return deny
	}
	if !actor.Authenticated() {
		return deny
	}
	startupID = strings.TrimSpace(startupID)
	if startupID == "" {
		return deny
	}

	// 1) founder: acceso total, no consulta el ledger
	if e.IsOwner(ctx, actor, startupID) {
		return Decision{Granted: true, AsOwner: true}
	}

	// 2) advisors, community y usuarios sin perfil nunca acceden
	if actor.Role() != identity.UserTypeInvestor {
		return deny
	}

	// 3) inversionista: requiere solicitud aprobada y vigente
	req, err := e.ledger.GetForPair(ctx, actor.UserID, startupID)
	if err != nil {
		if !errors.Is(err, accessrequests.ErrNotFound) {
			e.log.Warn("ledger lookup failed", map[string]any{
				"startup_id": startupID,
				"user_id":    actor.UserID,
				"error":      err.Error(),
			})
		}
		return deny
	}
	if !req.IsActive(e.now()) {
		return deny
	}
	return Decision{Granted: true}
}

// IsOwner es el chequeo de ownership que protege las escrituras (no pasa por el ledger).
func (e *Engine) IsOwner(ctx context.Context, actor identity.AuthContext, startupID string) bool {
	if !actor.Authenticated() || actor.Profile == nil {
		return false
	}
	founderID, err := e.startups.FounderOf(ctx, startupID)
	if err != nil {
		return false
	}
	return founderID != "" && founderID == actor.UserID
}

// Visibility calcula el acceso de cada sección para la vista de perfil.
func (e *Engine) Visibility(ctx context.Context, actor identity.AuthContext, startupID string) map[Section]bool {
	out := make(map[Section]bool, len(Sections))
	for _, s := range Sections {
		out[s] = e.CanAccess(ctx, actor, startupID, s)
	}
	return out
}
