package notify

import (
	"context"
	"time"
)

type EventType string

const (
	EventAccessRequested EventType = "access_request.submitted"
	EventAccessApproved  EventType = "access_request.approved"
	EventAccessRejected  EventType = "access_request.rejected"
	EventAccessRevoked   EventType = "access_request.revoked"
)

// Event es el payload que reciben los consumidores de notificaciones (email, in-app).
type Event struct {
	Type           EventType `json:"type"`
	RequestID      string    `json:"request_id"`
	StartupID      string    `json:"startup_id"`
	InvestorUserID string    `json:"investor_user_id"`
	FounderUserID  string    `json:"founder_user_id"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher publica eventos de dominio. Es best-effort: un error no revierte la operación.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop se usa cuando no hay broker configurado.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
