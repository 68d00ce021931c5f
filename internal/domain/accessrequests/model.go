package accessrequests

import "time"

// MaxMessageLength es el largo máximo (en caracteres) del mensaje del inversionista.
const MaxMessageLength = 1000

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusRevoked  Status = "revoked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevoked:
		return true
	default:
		return false
	}
}

// Request es la única entrada del ledger para el par (inversionista, startup).
type Request struct {
	ID string

	InvestorUserID string
	StartupID      string

	Status  Status
	Message string

	ReviewedBy    string // founder que revisó; vacío mientras está pending
	ReviewMessage string

	RequestedAt time.Time
	ReviewedAt  *time.Time // != nil sii Status != pending
	ExpiresAt   *time.Time // >= ReviewedAt
	RevokedAt   *time.Time
	UpdatedAt   time.Time
}

// IsActive se evalúa contra el reloj en cada chequeo; nunca se cachea.
func (r Request) IsActive(now time.Time) bool {
	if r.Status != StatusApproved {
		return false
	}
	if r.ExpiresAt != nil && r.ExpiresAt.Before(now) {
		return false
	}
	return true
}

// Expired: aprobado pero vencido.
func (r Request) Expired(now time.Time) bool {
	return r.Status == StatusApproved && !r.IsActive(now)
}

// CanResubmit indica si el inversionista puede volver a pedir acceso.
func (r Request) CanResubmit(now time.Time) bool {
	switch r.Status {
	case StatusRejected, StatusRevoked:
		return true
	case StatusApproved:
		return r.Expired(now)
	default:
		return false
	}
}

// resubmit vuelve la entrada a pending y limpia todo rastro de la revisión anterior.
func (r *Request) resubmit(message string, now time.Time) {
	r.Message = message
	r.Status = StatusPending
	r.RequestedAt = now
	r.UpdatedAt = now
	r.ReviewedBy = ""
	r.ReviewMessage = ""
	r.ReviewedAt = nil
	r.ExpiresAt = nil
	r.RevokedAt = nil
}
