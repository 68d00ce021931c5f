package startups

import "time"

// Stage define la etapa de la compañía.
// @Enum idea, prototype, mvp, early_traction, growth, scale, exit
type Stage string

const (
	StageIdea          Stage = "idea"
	StagePrototype     Stage = "prototype"
	StageMVP           Stage = "mvp"
	StageEarlyTraction Stage = "early_traction"
	StageGrowth        Stage = "growth"
	StageScale         Stage = "scale"
	StageExit          Stage = "exit"
)

func (s Stage) Valid() bool {
	switch s {
	case StageIdea, StagePrototype, StageMVP, StageEarlyTraction, StageGrowth, StageScale, StageExit:
		return true
	default:
		return false
	}
}

// Startup es la entidad dueña de las secciones privadas. Tiene exactamente un founder.
type Startup struct {
	ID            string
	FounderUserID string

	CompanyName string
	Tagline     string
	Description string
	Stage       Stage
	Website     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
