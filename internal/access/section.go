package access

import "strings"

// Section es una de las secciones privadas de una startup. La aprobación es por startup
// (las cuatro a la vez), pero la auditoría registra la sección puntual que se leyó.
type Section string

const (
	SectionFinancials Section = "financials"
	SectionPeople     Section = "people"
	SectionNews       Section = "news"
	SectionTechnology Section = "technology"
)

// Sections en el orden en que se muestran en el perfil.
var Sections = []Section{SectionFinancials, SectionPeople, SectionNews, SectionTechnology}

func ParseSection(s string) (Section, bool) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if sec.Valid() {
		return sec, true
	}
	return "", false
}

func (s Section) Valid() bool {
	switch s {
	case SectionFinancials, SectionPeople, SectionNews, SectionTechnology:
		return true
	default:
		return false
	}
}
