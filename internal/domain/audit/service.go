package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venture-hub/internal/access"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("startup not found")
)

// StartupLookup evita importar el paquete startups (rompe ciclos).
type StartupLookup interface {
	FounderOf(ctx context.Context, startupID string) (string, error)
}

type Log struct {
	repo     Repository
	startups StartupLookup
	now      func() time.Time
}

func NewLog(repo Repository, startups StartupLookup) *Log {
	return &Log{
		repo:     repo,
		startups: startups,
		now:      time.Now,
	}
}

func (l *Log) WithClock(now func() time.Time) *Log {
	if now != nil {
		l.now = now
	}
	return l
}

type RecordInput struct {
	InvestorUserID string
	StartupID      string
	Section        access.Section
	IPAddress      string
	UserAgent      string
}

// Record agrega una entrada. Sin dedup: cada lectura es una fila.
func (l *Log) Record(ctx context.Context, in RecordInput) (Entry, error) {
	investor := strings.TrimSpace(in.InvestorUserID)
	startupID := strings.TrimSpace(in.StartupID)
	if investor == "" || startupID == "" || !in.Section.Valid() {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{
		ID:             uuid.NewString(),
		InvestorUserID: investor,
		StartupID:      startupID,
		Section:        in.Section,
		AccessedAt:     l.now().UTC(),
		IPAddress:      truncate(strings.TrimSpace(in.IPAddress), 64),
		UserAgent:      truncate(in.UserAgent, 512),
	}
	if err := l.repo.Append(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("append audit entry: %w", err)
	}
	return e, nil
}

// ListByStartup es el reporte de compliance. Solo lo ve el founder dueño.
func (l *Log) ListByStartup(ctx context.Context, startupID, founderUserID string, f Filter) ([]Entry, error) {
	startupID = strings.TrimSpace(startupID)
	founderUserID = strings.TrimSpace(founderUserID)
	if startupID == "" || founderUserID == "" {
		return nil, ErrInvalidInput
	}
	if f.Section != "" && !f.Section.Valid() {
		return nil, ErrInvalidInput
	}

	ownerID, err := l.startups.FounderOf(ctx, startupID)
	if err != nil {
		return nil, ErrNotFound
	}
	if ownerID != founderUserID {
		return nil, ErrForbidden
	}

	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return l.repo.ListByStartup(ctx, startupID, f)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
