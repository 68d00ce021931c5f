package startups

import (
	"context"
	"errors"
	"strings"
	"time"

	"venture-hub/internal/identity"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("startup not found")
	ErrNotFounder    = errors.New("only founders can create startups")
	ErrAlreadyExists = errors.New("founder already has a startup")
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

type CreateInput struct {
	CompanyName string
	Tagline     string
	Description string
	Stage       Stage
	Website     string
}

func (s *Service) Create(ctx context.Context, actor identity.AuthContext, in CreateInput) (Startup, error) {
	if !actor.IsFounder() {
		return Startup{}, ErrNotFounder
	}
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return Startup{}, ErrInvalidInput
	}
	stage := in.Stage
	if stage == "" {
		stage = StageIdea
	}
	if !stage.Valid() {
		return Startup{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByFounder(ctx, actor.UserID); err == nil {
		return Startup{}, ErrAlreadyExists
	}

	now := s.now()
	st := Startup{
		ID:            uuid.NewString(),
		FounderUserID: actor.UserID,
		CompanyName:   name,
		Tagline:       strings.TrimSpace(in.Tagline),
		Description:   strings.TrimSpace(in.Description),
		Stage:         stage,
		Website:       strings.TrimSpace(in.Website),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return Startup{}, err
	}
	return st, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Startup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Startup{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
