package privatedata

import (
	"fmt"

	"venture-hub/internal/access"

	"github.com/shopspring/decimal"
)

// WorkMode
// @Enum remote, hybrid, onsite
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeRemote, WorkModeHybrid, WorkModeOnsite:
		return true
	default:
		return false
	}
}

type People struct {
	TotalEmployees     int `json:"total_employees"`
	FoundersCount      int `json:"founders_count"`
	TechTeamSize       int `json:"tech_team_size"`
	LeadershipTeamSize int `json:"leadership_team_size"`

	TeamMembers        []TeamMember       `json:"team_members"`
	EquityDistribution EquityDistribution `json:"equity_distribution"`

	CompanyMission         string   `json:"company_mission"`
	CompanyVision          string   `json:"company_vision"`
	CompanyValues          string   `json:"company_values"`
	WorkMode               WorkMode `json:"work_mode"`
	MainLocation           string   `json:"main_location"`
	RemoteWorkPolicy       string   `json:"remote_work_policy"`
	CompensationPhilosophy string   `json:"compensation_philosophy"`
	DiversityInitiatives   string   `json:"diversity_initiatives"`

	HiringPlan     HiringPlan `json:"hiring_plan"`
	KeyRolesNeeded string     `json:"key_roles_needed"`
	OrgChartURL    string     `json:"org_chart_url"`

	AdvisoryBoard         []Advisor `json:"advisory_board"`
	EmployeeBenefits      []string  `json:"employee_benefits"`
	CompanyCultureDeckURL string    `json:"company_culture_deck_url"`
}

type TeamMember struct {
	Name     string              `json:"name"`
	Position string              `json:"position"`
	Email    string              `json:"email"`
	Equity   decimal.NullDecimal `json:"equity"`
	Bio      string              `json:"bio"`
	LinkedIn string              `json:"linkedin"`
}

// EquityDistribution en porcentajes. founders + esop_pool + investors <= 100.
type EquityDistribution struct {
	FoundersEquityTotal decimal.NullDecimal `json:"founders_equity_total"`
	ESOPPoolPercentage  decimal.NullDecimal `json:"esop_pool_percentage"`
	ESOPAllocated       decimal.NullDecimal `json:"esop_allocated"`
	InvestorEquityTotal decimal.NullDecimal `json:"investor_equity_total"`
}

type HiringPlan struct {
	BudgetAnnual        decimal.NullDecimal `json:"budget_annual"`
	Priority1           string              `json:"priority_1"`
	RecruitmentStrategy string              `json:"recruitment_strategy"`
	Quarters            []HiringQuarter     `json:"quarters"`
}

type HiringQuarter struct {
	Quarter   string   `json:"quarter"`
	Roles     []string `json:"roles"`
	Headcount int      `json:"headcount"`
}

type Advisor struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	LinkedIn  string `json:"linkedin"`
}

func newPeople() *People {
	return &People{
		FoundersCount:    1,
		WorkMode:         WorkModeHybrid,
		TeamMembers:      []TeamMember{},
		HiringPlan:       HiringPlan{Quarters: []HiringQuarter{}},
		AdvisoryBoard:    []Advisor{},
		EmployeeBenefits: []string{},
	}
}

func (*People) Section() access.Section { return access.SectionPeople }

func (p *People) normalize() {
	p.TeamMembers = emptyIfNil(p.TeamMembers)
	p.AdvisoryBoard = emptyIfNil(p.AdvisoryBoard)
	p.EmployeeBenefits = emptyIfNil(p.EmployeeBenefits)
	p.HiringPlan.Quarters = emptyIfNil(p.HiringPlan.Quarters)
	for i := range p.HiringPlan.Quarters {
		p.HiringPlan.Quarters[i].Roles = emptyIfNil(p.HiringPlan.Quarters[i].Roles)
	}
}

func (p *People) Validate() error {
	counts := map[string]int{
		"total_employees":      p.TotalEmployees,
		"founders_count":       p.FoundersCount,
		"tech_team_size":       p.TechTeamSize,
		"leadership_team_size": p.LeadershipTeamSize,
	}
	for _, field := range []string{"total_employees", "founders_count", "tech_team_size", "leadership_team_size"} {
		if counts[field] < 0 {
			return invalid(field, "must be >= 0")
		}
	}
	if !p.WorkMode.Valid() {
		return invalid("work_mode", "must be remote, hybrid or onsite")
	}

	for i, m := range p.TeamMembers {
		field := fmt.Sprintf("team_members[%d]", i)
		if err := firstErr(
			required(field+".name", m.Name),
			checkEmail(field+".email", m.Email),
			checkPercent(field+".equity", m.Equity),
			checkURL(field+".linkedin", m.LinkedIn),
		); err != nil {
			return err
		}
	}

	if err := p.EquityDistribution.validate(); err != nil {
		return err
	}

	if err := checkMoney("hiring_plan.budget_annual", p.HiringPlan.BudgetAnnual); err != nil {
		return err
	}
	for i, q := range p.HiringPlan.Quarters {
		field := fmt.Sprintf("hiring_plan.quarters[%d]", i)
		if err := checkQuarter(field+".quarter", q.Quarter); err != nil {
			return err
		}
		if q.Headcount < 0 {
			return invalid(field+".headcount", "must be >= 0")
		}
	}

	for i, a := range p.AdvisoryBoard {
		field := fmt.Sprintf("advisory_board[%d]", i)
		if err := firstErr(required(field+".name", a.Name), checkURL(field+".linkedin", a.LinkedIn)); err != nil {
			return err
		}
	}

	return firstErr(
		checkURL("org_chart_url", p.OrgChartURL),
		checkURL("company_culture_deck_url", p.CompanyCultureDeckURL),
	)
}

func (e EquityDistribution) validate() error {
	if err := firstErr(
		checkPercent("equity_distribution.founders_equity_total", e.FoundersEquityTotal),
		checkPercent("equity_distribution.esop_pool_percentage", e.ESOPPoolPercentage),
		checkPercent("equity_distribution.esop_allocated", e.ESOPAllocated),
		checkPercent("equity_distribution.investor_equity_total", e.InvestorEquityTotal),
	); err != nil {
		return err
	}

	total := decimal.Zero
	for _, d := range []decimal.NullDecimal{e.FoundersEquityTotal, e.ESOPPoolPercentage, e.InvestorEquityTotal} {
		if d.Valid {
			total = total.Add(d.Decimal)
		}
	}
	if total.GreaterThan(hundred) {
		return invalid("equity_distribution", "founders, esop pool and investors must not exceed 100")
	}

	if e.ESOPAllocated.Valid {
		pool := decimal.Zero
		if e.ESOPPoolPercentage.Valid {
			pool = e.ESOPPoolPercentage.Decimal
		}
		if e.ESOPAllocated.Decimal.GreaterThan(pool) {
			return invalid("equity_distribution.esop_allocated", "must not exceed esop_pool_percentage")
		}
	}
	return nil
}
