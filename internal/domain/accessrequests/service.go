package accessrequests

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"venture-hub/internal/identity"
	"venture-hub/internal/platform/logger"
	"venture-hub/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrBadState       = errors.New("invalid state")
	ErrNotInvestor    = errors.New("only investors can request access")
	ErrAlreadyPending = errors.New("request already pending")
	ErrAlreadyActive  = errors.New("access already granted")
)

// StartupLookup evita importar el paquete startups (rompe ciclos).
type StartupLookup interface {
	FounderOf(ctx context.Context, startupID string) (string, error)
}

type Service struct {
	repo      Repository
	startups  StartupLookup
	publisher notify.Publisher
	log       logger.Logger
	now       func() time.Time
}

func NewService(repo Repository, startups StartupLookup) *Service {
	return &Service{
		repo:      repo,
		startups:  startups,
		publisher: notify.Noop{},
		log:       logger.Discard(),
		now:       time.Now,
	}
}

func (s *Service) WithPublisher(p notify.Publisher) *Service {
	if p != nil {
		s.publisher = p
	}
	return s
}

func (s *Service) WithLogger(l logger.Logger) *Service {
	if l != nil {
		s.log = l.With(map[string]any{"module": "accessrequests"})
	}
	return s
}

// WithClock reemplaza time.Now (tests de vencimiento).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Submit registra (o re-abre) la solicitud de acceso de un inversionista.
//
// ErrAlreadyPending y ErrAlreadyActive devuelven además la entrada existente sin modificarla.
func (s *Service) Submit(ctx context.Context, actor identity.AuthContext, startupID, message string) (Request, error) {
	if !actor.IsInvestor() {
		return Request{}, ErrNotInvestor
	}
	startupID = strings.TrimSpace(startupID)
	message = strings.TrimSpace(message)
	if startupID == "" || message == "" {
		return Request{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return Request{}, ErrInvalidInput
	}

	founderID, err := s.startups.FounderOf(ctx, startupID)
	if err != nil || strings.TrimSpace(founderID) == "" {
		return Request{}, ErrNotFound
	}

	var out Request
	attempt := func() error {
		return s.repo.InTx(ctx, func(ctx context.Context, tx Repository) error {
			now := s.now()

			cur, err := tx.GetByPair(ctx, actor.UserID, startupID)
			if errors.Is(err, ErrNotFound) {
				out = Request{
					ID:             uuid.NewString(),
					InvestorUserID: actor.UserID,
					StartupID:      startupID,
					Status:         StatusPending,
					Message:        message,
					RequestedAt:    now,
					UpdatedAt:      now,
				}
				return tx.Create(ctx, out)
			}
			if err != nil {
				return err
			}

			out = cur
			switch {
			case cur.Status == StatusPending:
				return ErrAlreadyPending
			case cur.IsActive(now):
				return ErrAlreadyActive
			case !cur.CanResubmit(now):
				return ErrBadState
			}

			cur.resubmit(message, now)
			if err := tx.Update(ctx, cur); err != nil {
				return err
			}
			out = cur
			return nil
		})
	}

	err = attempt()
	if errors.Is(err, ErrDuplicate) {
		// Otro request insertó el par entre nuestro SELECT y el INSERT: el segundo intento
		// cae en la rama de update / already pending.
		err = attempt()
	}
	switch {
	case errors.Is(err, ErrAlreadyPending), errors.Is(err, ErrAlreadyActive):
		return out, err
	case errors.Is(err, ErrDuplicate):
		return out, ErrAlreadyPending
	case err != nil:
		return Request{}, fmt.Errorf("submit access request: %w", err)
	}

	s.publish(ctx, notify.EventAccessRequested, out, founderID)
	return out, nil
}

type ReviewInput struct {
	Message   string
	ExpiresAt *time.Time // nil = sin vencimiento
}

// Approve solo procede desde pending y solo por el founder dueño de la startup.
// Cualquier otro revisor, o un requestID desconocido, recibe ErrForbidden.
func (s *Service) Approve(ctx context.Context, requestID, reviewerUserID string, in ReviewInput) (Request, error) {
	return s.review(ctx, requestID, reviewerUserID, notify.EventAccessApproved, func(r *Request, now time.Time) error {
		if r.Status != StatusPending {
			return ErrBadState
		}
		if in.ExpiresAt != nil && in.ExpiresAt.Before(now) {
			return ErrInvalidInput
		}
		r.Status = StatusApproved
		r.ReviewedBy = reviewerUserID
		r.ReviewMessage = strings.TrimSpace(in.Message)
		r.ReviewedAt = &now
		r.ExpiresAt = nil
		if in.ExpiresAt != nil {
			exp := in.ExpiresAt.UTC()
			r.ExpiresAt = &exp
		}
		r.UpdatedAt = now
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, requestID, reviewerUserID, message string) (Request, error) {
	return s.review(ctx, requestID, reviewerUserID, notify.EventAccessRejected, func(r *Request, now time.Time) error {
		if r.Status != StatusPending {
			return ErrBadState
		}
		r.Status = StatusRejected
		r.ReviewedBy = reviewerUserID
		r.ReviewMessage = strings.TrimSpace(message)
		r.ReviewedAt = &now
		r.ExpiresAt = nil
		r.UpdatedAt = now
		return nil
	})
}

// Revoke corta un acceso aprobado (vencido o no). ReviewedAt conserva la fecha de aprobación
// y RevokedAt registra el corte.
func (s *Service) Revoke(ctx context.Context, requestID, reviewerUserID string) (Request, error) {
	return s.review(ctx, requestID, reviewerUserID, notify.EventAccessRevoked, func(r *Request, now time.Time) error {
		if r.Status != StatusApproved {
			return ErrBadState
		}
		r.Status = StatusRevoked
		r.RevokedAt = &now
		r.UpdatedAt = now
		return nil
	})
}

func (s *Service) review(
	ctx context.Context,
	requestID, reviewerUserID string,
	event notify.EventType,
	mutate func(r *Request, now time.Time) error,
) (Request, error) {
	requestID = strings.TrimSpace(requestID)
	reviewerUserID = strings.TrimSpace(reviewerUserID)
	if requestID == "" || reviewerUserID == "" {
		return Request{}, ErrInvalidInput
	}

	var out Request
	err := s.repo.InTx(ctx, func(ctx context.Context, tx Repository) error {
		// ID inexistente y solicitud ajena responden igual: no se revela qué IDs existen.
		r, err := tx.GetByID(ctx, requestID)
		if errors.Is(err, ErrNotFound) {
			return ErrForbidden
		}
		if err != nil {
			return err
		}

		founderID, err := s.startups.FounderOf(ctx, r.StartupID)
		if err != nil {
			return ErrForbidden
		}
		if founderID != reviewerUserID {
			return ErrForbidden
		}

		if err := mutate(&r, s.now()); err != nil {
			return err
		}
		if err := tx.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		if isDomainErr(err) {
			return Request{}, err
		}
		return Request{}, fmt.Errorf("review access request: %w", err)
	}

	s.publish(ctx, event, out, reviewerUserID)
	return out, nil
}

// Get devuelve la solicitud solo a sus dos partes. Para cualquier otro usuario responde
// ErrNotFound, así no se revela si existe.
func (s *Service) Get(ctx context.Context, requestID, viewerUserID string) (Request, error) {
	requestID = strings.TrimSpace(requestID)
	viewerUserID = strings.TrimSpace(viewerUserID)
	if requestID == "" || viewerUserID == "" {
		return Request{}, ErrInvalidInput
	}

	r, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	if r.InvestorUserID == viewerUserID {
		return r, nil
	}
	if founderID, err := s.startups.FounderOf(ctx, r.StartupID); err == nil && founderID == viewerUserID {
		return r, nil
	}
	return Request{}, ErrNotFound
}

// GetForPair es la lectura que usa el motor de decisión.
func (s *Service) GetForPair(ctx context.Context, investorUserID, startupID string) (Request, error) {
	investorUserID = strings.TrimSpace(investorUserID)
	startupID = strings.TrimSpace(startupID)
	if investorUserID == "" || startupID == "" {
		return Request{}, ErrInvalidInput
	}
	return s.repo.GetByPair(ctx, investorUserID, startupID)
}

// ListByStartup es la bandeja de revisión del founder. statuses vacío = todos.
func (s *Service) ListByStartup(ctx context.Context, startupID, founderUserID string, statuses []Status) ([]Request, error) {
	startupID = strings.TrimSpace(startupID)
	founderUserID = strings.TrimSpace(founderUserID)
	if startupID == "" || founderUserID == "" {
		return nil, ErrInvalidInput
	}

	ownerID, err := s.startups.FounderOf(ctx, startupID)
	if err != nil {
		return nil, ErrNotFound
	}
	if ownerID != founderUserID {
		return nil, ErrForbidden
	}

	items, err := s.repo.ListByStartup(ctx, startupID)
	if err != nil {
		return nil, err
	}
	return sortByRequestedAt(filterByStatus(items, statuses)), nil
}

func (s *Service) ListByInvestor(ctx context.Context, investorUserID string) ([]Request, error) {
	investorUserID = strings.TrimSpace(investorUserID)
	if investorUserID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByInvestor(ctx, investorUserID)
	if err != nil {
		return nil, err
	}
	return sortByRequestedAt(items), nil
}

func (s *Service) publish(ctx context.Context, typ notify.EventType, r Request, founderID string) {
	err := s.publisher.Publish(ctx, notify.Event{
		Type:           typ,
		RequestID:      r.ID,
		StartupID:      r.StartupID,
		InvestorUserID: r.InvestorUserID,
		FounderUserID:  founderID,
		Status:         string(r.Status),
		OccurredAt:     r.UpdatedAt,
	})
	if err != nil {
		s.log.Warn("notification publish failed", map[string]any{
			"event":      string(typ),
			"request_id": r.ID,
			"error":      err.Error(),
		})
	}
}

func isDomainErr(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrForbidden, ErrNotFound, ErrBadState,
		ErrNotInvestor, ErrAlreadyPending, ErrAlreadyActive,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func filterByStatus(items []Request, statuses []Status) []Request {
	if len(statuses) == 0 {
		return items
	}
	allowed := make(map[Status]struct{}, len(statuses))
	for _, st := range statuses {
		allowed[st] = struct{}{}
	}
	out := make([]Request, 0, len(items))
	for _, r := range items {
		if _, ok := allowed[r.Status]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Más recientes primero.
func sortByRequestedAt(items []Request) []Request {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RequestedAt.After(items[j].RequestedAt)
	})
	return items
}
