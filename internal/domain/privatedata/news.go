package privatedata

import (
	"fmt"
	"strings"
	"time"

	"venture-hub/internal/access"
)

type News struct {
	MonthlyUpdates           []MonthlyUpdate `json:"monthly_updates"`
	MilestoneAchievements    string          `json:"milestone_achievements"`
	UpcomingMilestones       []DatedItem     `json:"upcoming_milestones"`
	CompetitiveAnalysis      string          `json:"competitive_analysis"`
	MarketDevelopments       string          `json:"market_developments"`
	PartnershipOpportunities string          `json:"partnership_opportunities"`

	MediaCoverage  []MediaItem `json:"media_coverage"`
	PressReleases  string      `json:"press_releases"`
	UpcomingEvents []DatedItem `json:"upcoming_events"`

	InvestorLetterTemplate string            `json:"investor_letter_template"`
	QuarterlyReports       []QuarterlyReport `json:"quarterly_reports"`
	CustomerTestimonials   []Testimonial     `json:"customer_testimonials"`
	CaseStudies            []CaseStudy       `json:"case_studies"`
}

// MonthlyUpdate: Month en formato YYYY-MM.
type MonthlyUpdate struct {
	Month string `json:"month"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DatedItem se usa para hitos y eventos. Date es YYYY-MM-DD opcional.
type DatedItem struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type MediaItem struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	URL       string `json:"url"`
	Date      string `json:"date"`
}

type QuarterlyReport struct {
	Quarter string `json:"quarter"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

type Testimonial struct {
	Customer string `json:"customer"`
	Quote    string `json:"quote"`
}

type CaseStudy struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func newNews() *News {
	return &News{
		MonthlyUpdates:       []MonthlyUpdate{},
		UpcomingMilestones:   []DatedItem{},
		MediaCoverage:        []MediaItem{},
		UpcomingEvents:       []DatedItem{},
		QuarterlyReports:     []QuarterlyReport{},
		CustomerTestimonials: []Testimonial{},
		CaseStudies:          []CaseStudy{},
	}
}

func (*News) Section() access.Section { return access.SectionNews }

func (n *News) normalize() {
	n.MonthlyUpdates = emptyIfNil(n.MonthlyUpdates)
	n.UpcomingMilestones = emptyIfNil(n.UpcomingMilestones)
	n.MediaCoverage = emptyIfNil(n.MediaCoverage)
	n.UpcomingEvents = emptyIfNil(n.UpcomingEvents)
	n.QuarterlyReports = emptyIfNil(n.QuarterlyReports)
	n.CustomerTestimonials = emptyIfNil(n.CustomerTestimonials)
	n.CaseStudies = emptyIfNil(n.CaseStudies)
}

func (n *News) Validate() error {
	for i, u := range n.MonthlyUpdates {
		field := fmt.Sprintf("monthly_updates[%d]", i)
		if _, err := time.Parse("2006-01", strings.TrimSpace(u.Month)); err != nil {
			return invalid(field+".month", "must be YYYY-MM")
		}
		if err := required(field+".title", u.Title); err != nil {
			return err
		}
	}
	if err := validateDated("upcoming_milestones", n.UpcomingMilestones); err != nil {
		return err
	}
	if err := validateDated("upcoming_events", n.UpcomingEvents); err != nil {
		return err
	}
	for i, m := range n.MediaCoverage {
		field := fmt.Sprintf("media_coverage[%d]", i)
		if err := firstErr(
			required(field+".title", m.Title),
			checkURL(field+".url", m.URL),
			checkDate(field+".date", m.Date),
		); err != nil {
			return err
		}
	}
	for i, q := range n.QuarterlyReports {
		field := fmt.Sprintf("quarterly_reports[%d]", i)
		if err := firstErr(checkQuarter(field+".quarter", q.Quarter), checkURL(field+".url", q.URL)); err != nil {
			return err
		}
	}
	for i, c := range n.CustomerTestimonials {
		field := fmt.Sprintf("customer_testimonials[%d]", i)
		if err := firstErr(required(field+".customer", c.Customer), required(field+".quote", c.Quote)); err != nil {
			return err
		}
	}
	for i, c := range n.CaseStudies {
		field := fmt.Sprintf("case_studies[%d]", i)
		if err := firstErr(required(field+".title", c.Title), checkURL(field+".url", c.URL)); err != nil {
			return err
		}
	}
	return nil
}

func validateDated(name string, items []DatedItem) error {
	for i, it := range items {
		field := fmt.Sprintf("%s[%d]", name, i)
		if err := firstErr(required(field+".title", it.Title), checkDate(field+".date", it.Date)); err != nil {
			return err
		}
	}
	return nil
}
