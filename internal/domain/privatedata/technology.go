package privatedata

import (
	"fmt"

	"venture-hub/internal/access"

	"github.com/shopspring/decimal"
)

// RoadmapStatus
// @Enum planned, in_progress, done
type RoadmapStatus string

const (
	RoadmapPlanned    RoadmapStatus = "planned"
	RoadmapInProgress RoadmapStatus = "in_progress"
	RoadmapDone       RoadmapStatus = "done"
)

type Technology struct {
	TechnologyStack          TechStack           `json:"technology_stack"`
	ArchitectureOverview     string              `json:"architecture_overview"`
	InfrastructureDetails    string              `json:"infrastructure_details"`
	ProductRoadmap           []RoadmapItem       `json:"product_roadmap"`
	FeatureSpecifications    string              `json:"feature_specifications"`
	TechnicalMilestones      []DatedItem         `json:"technical_milestones"`
	PerformanceMetrics       []Metric            `json:"performance_metrics"`
	UptimeStatistics         decimal.NullDecimal `json:"uptime_statistics"`
	SecurityMeasures         string              `json:"security_measures"`
	PatentsFiled             string              `json:"patents_filed"`
	Trademarks               []string            `json:"trademarks"`
	TradeSecrets             string              `json:"trade_secrets"`
	ScalabilityPlan          string              `json:"scalability_plan"`
	TechnicalDebtAssessment  string              `json:"technical_debt_assessment"`
	DevelopmentMethodology   string              `json:"development_methodology"`
	ComplianceStandards      []string            `json:"compliance_standards"`
	DataPrivacyMeasures      string              `json:"data_privacy_measures"`
	RegulatoryConsiderations string              `json:"regulatory_considerations"`

	APIDocumentationURL      string `json:"api_documentation_url"`
	TechnicalArchitectureURL string `json:"technical_architecture_url"`
	CodeQualityReportsURL    string `json:"code_quality_reports_url"`
}

type TechStack struct {
	Frontend       []string `json:"frontend"`
	Backend        []string `json:"backend"`
	Data           []string `json:"data"`
	Infrastructure []string `json:"infrastructure"`
}

type RoadmapItem struct {
	Quarter string        `json:"quarter"`
	Title   string        `json:"title"`
	Status  RoadmapStatus `json:"status"`
}

type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

func newTechnology() *Technology {
	return &Technology{
		TechnologyStack: TechStack{
			Frontend:       []string{},
			Backend:        []string{},
			Data:           []string{},
			Infrastructure: []string{},
		},
		ProductRoadmap:      []RoadmapItem{},
		TechnicalMilestones: []DatedItem{},
		PerformanceMetrics:  []Metric{},
		Trademarks:          []string{},
		ComplianceStandards: []string{},
	}
}

func (*Technology) Section() access.Section { return access.SectionTechnology }

func (t *Technology) normalize() {
	st := &t.TechnologyStack
	st.Frontend = emptyIfNil(st.Frontend)
	st.Backend = emptyIfNil(st.Backend)
	st.Data = emptyIfNil(st.Data)
	st.Infrastructure = emptyIfNil(st.Infrastructure)
	t.ProductRoadmap = emptyIfNil(t.ProductRoadmap)
	t.TechnicalMilestones = emptyIfNil(t.TechnicalMilestones)
	t.PerformanceMetrics = emptyIfNil(t.PerformanceMetrics)
	t.Trademarks = emptyIfNil(t.Trademarks)
	t.ComplianceStandards = emptyIfNil(t.ComplianceStandards)
}

func (t *Technology) Validate() error {
	for i, it := range t.ProductRoadmap {
		field := fmt.Sprintf("product_roadmap[%d]", i)
		if err := firstErr(checkQuarter(field+".quarter", it.Quarter), required(field+".title", it.Title)); err != nil {
			return err
		}
		switch it.Status {
		case RoadmapPlanned, RoadmapInProgress, RoadmapDone:
		default:
			return invalid(field+".status", "must be planned, in_progress or done")
		}
	}
	if err := validateDated("technical_milestones", t.TechnicalMilestones); err != nil {
		return err
	}
	for i, m := range t.PerformanceMetrics {
		if err := required(fmt.Sprintf("performance_metrics[%d].name", i), m.Name); err != nil {
			return err
		}
	}
	return firstErr(
		checkPercentScale("uptime_statistics", t.UptimeStatistics, 3),
		checkURL("api_documentation_url", t.APIDocumentationURL),
		checkURL("technical_architecture_url", t.TechnicalArchitectureURL),
		checkURL("code_quality_reports_url", t.CodeQualityReportsURL),
	)
}
