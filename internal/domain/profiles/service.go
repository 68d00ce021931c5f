package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"venture-hub/internal/identity"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
	// ErrRoleLocked: el user_type no se puede cambiar una vez creado el perfil.
	ErrRoleLocked = errors.New("user_type cannot be changed")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SaveInput struct {
	UserType    string
	DisplayName string
	Bio         string
	Location    string
}

func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (identity.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return identity.Profile{}, ErrInvalidInput
	}
	ut, ok := identity.ParseUserType(in.UserType)
	if !ok {
		return identity.Profile{}, ErrInvalidInput
	}
	if len([]rune(strings.TrimSpace(in.Bio))) > 500 {
		return identity.Profile{}, ErrInvalidInput
	}

	now := s.now()
	p := identity.Profile{
		UserID:      userID,
		UserType:    ut,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Bio:         strings.TrimSpace(in.Bio),
		Location:    strings.TrimSpace(in.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if existing.UserType != ut {
			return identity.Profile{}, ErrRoleLocked
		}
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrNotFound):
		return identity.Profile{}, err
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return identity.Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (identity.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return identity.Profile{}, ErrNotFound
	}
	return s.repo.GetByUserID(ctx, userID)
}
