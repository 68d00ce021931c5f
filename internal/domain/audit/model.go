package audit

import (
	"time"

	"venture-hub/internal/access"
)

// Entry registra una lectura de una sección privada por parte de un inversionista.
// Es append-only: no hay update ni delete.
type Entry struct {
	ID             string
	InvestorUserID string
	StartupID      string
	Section        access.Section
	AccessedAt     time.Time
	IPAddress      string
	UserAgent      string
}

// Filter para el reporte del founder. Section vacío = todas; Limit <= 0 usa DefaultLimit.
type Filter struct {
	Section access.Section
	Limit   int
}

const (
	DefaultLimit = 100
	MaxLimit     = 500
)
