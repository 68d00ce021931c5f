package privatedata

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"venture-hub/internal/access"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	rows  map[string]Row
	saves int
}

func newTestRepo() *testRepo { return &testRepo{rows: map[string]Row{}} }

func (r *testRepo) GetOrCreate(_ context.Context, def Row) (Row, error) {
	key := def.StartupID + "|" + string(def.Section)
	if row, ok := r.rows[key]; ok {
		return row, nil
	}
	r.rows[key] = def
	return def, nil
}

func (r *testRepo) Save(_ context.Context, row Row) error {
	r.saves++
	r.rows[row.StartupID+"|"+string(row.Section)] = row
	return nil
}

func newTestStore(repo Repository, clock *time.Time) *Store {
	s := NewStore(repo)
	s.now = func() time.Time { return *clock }
	return s
}

func TestDefaultDocuments_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden.json"),
	)

	for _, s := range access.Sections {
		doc, err := New(s)
		require.NoError(t, err)
		require.Equal(t, s, doc.Section())
		require.NoError(t, doc.Validate(), "default %s must be valid", s)

		out, err := json.MarshalIndent(doc, "", "  ")
		require.NoError(t, err)
		g.Assert(t, "default_"+string(s), append(out, '\n'))
	}
}

func TestNew_UnknownSection(t *testing.T) {
	_, err := New(access.Section("cap_table"))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	repo := newTestRepo()
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStore(repo, &clock)
	ctx := context.Background()

	first, err := s.GetOrCreate(ctx, "acme", access.SectionPeople)
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	second, err := s.GetOrCreate(ctx, "acme", access.SectionPeople)
	require.NoError(t, err)

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, first.Document, second.Document)
	assert.Equal(t, 1, second.Document.(*People).FoundersCount)

	_, err = s.GetOrCreate(ctx, " ", access.SectionPeople)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.GetOrCreate(ctx, "acme", access.Section("nope"))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestUpdate_MergesIntoCurrentDocument(t *testing.T) {
	repo := newTestRepo()
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStore(repo, &clock)
	ctx := context.Background()

	_, err := s.Update(ctx, "acme", access.SectionPeople, []byte(`{
		"total_employees": 12,
		"team_members": [{"name": "Maria", "position": "CEO", "email": "maria@acme.io"}],
		"equity_distribution": {"founders_equity_total": "60", "esop_pool_percentage": 10},
		"hiring_plan": {"priority_1": "Backend lead", "quarters": [{"quarter": "Q3 2025", "roles": ["SRE"], "headcount": 2}]},
		"employee_benefits": ["remote budget", "health"]
	}`))
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	rec, err := s.Update(ctx, "acme", access.SectionPeople, []byte(`{
		"equity_distribution": {"investor_equity_total": 20},
		"hiring_plan": {"recruitment_strategy": "referrals"},
		"employee_benefits": ["health"]
	}`))
	require.NoError(t, err)

	p := rec.Document.(*People)
	assert.Equal(t, 12, p.TotalEmployees)
	assert.Equal(t, 1, p.FoundersCount)
	assert.Equal(t, WorkModeHybrid, p.WorkMode)
	require.Len(t, p.TeamMembers, 1)
	assert.Equal(t, "Maria", p.TeamMembers[0].Name)

	// objetos anidados: campo a campo
	assert.True(t, p.EquityDistribution.FoundersEquityTotal.Decimal.Equal(decimal.NewFromInt(60)))
	assert.True(t, p.EquityDistribution.ESOPPoolPercentage.Decimal.Equal(decimal.NewFromInt(10)))
	assert.True(t, p.EquityDistribution.InvestorEquityTotal.Decimal.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Backend lead", p.HiringPlan.Priority1)
	assert.Equal(t, "referrals", p.HiringPlan.RecruitmentStrategy)
	assert.Len(t, p.HiringPlan.Quarters, 1)

	// listas: reemplazo completo
	assert.Equal(t, []string{"health"}, p.EmployeeBenefits)

	assert.Equal(t, clock, rec.UpdatedAt)
	assert.True(t, rec.CreatedAt.Before(rec.UpdatedAt))

	loaded, err := Load[*People](ctx, s, "acme")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestUpdate_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		section access.Section
		patch   string
	}{
		{"not an object", access.SectionFinancials, `[1,2]`},
		{"empty body", access.SectionFinancials, ``},
		{"malformed", access.SectionFinancials, `{"arr_current":`},
		{"unknown field", access.SectionFinancials, `{"valuation": 10}`},
		{"negative arr", access.SectionFinancials, `{"arr_current": -1}`},
		{"gross margin over 100", access.SectionFinancials, `{"gross_margin": 101}`},
		{"funding use over 100", access.SectionFinancials, `{"funding_use_breakdown": [{"category":"eng","percentage":70},{"category":"sales","percentage":40}]}`},
		{"relative url", access.SectionFinancials, `{"cap_table_url": "/files/cap.pdf"}`},
		{"projection year", access.SectionFinancials, `{"financial_projections": [{"year": 12}]}`},
		{"bad work mode", access.SectionPeople, `{"work_mode": "office"}`},
		{"bad email", access.SectionPeople, `{"team_members": [{"name":"x","email":"not-an-email"}]}`},
		{"equity over 100", access.SectionPeople, `{"equity_distribution": {"founders_equity_total": 70, "investor_equity_total": 40}}`},
		{"esop allocated over pool", access.SectionPeople, `{"equity_distribution": {"esop_pool_percentage": 5, "esop_allocated": 6}}`},
		{"bad hiring quarter", access.SectionPeople, `{"hiring_plan": {"quarters": [{"quarter":"2025-Q1"}]}}`},
		{"bad month", access.SectionNews, `{"monthly_updates": [{"month":"March","title":"x"}]}`},
		{"bad milestone date", access.SectionNews, `{"upcoming_milestones": [{"title":"x","date":"01/02/2025"}]}`},
		{"testimonial without quote", access.SectionNews, `{"customer_testimonials": [{"customer":"Globex"}]}`},
		{"bad roadmap status", access.SectionTechnology, `{"product_roadmap": [{"quarter":"Q1 2026","title":"SSO","status":"blocked"}]}`},
		{"uptime over 100", access.SectionTechnology, `{"uptime_statistics": 100.01}`},
		{"trailing data", access.SectionFinancials, `{} trailing`},
		{"second object", access.SectionFinancials, `{"arr_current": 1} {"arr_current": 2}`},
		{"huge exponent", access.SectionFinancials, `{"arr_current": 1e20000000}`},
		{"tiny exponent", access.SectionFinancials, `{"cash_position": 1e-20000000}`},
		{"huge growth rate", access.SectionFinancials, `{"mrr_growth_rate": -1e999999}`},
		{"too many decimals", access.SectionFinancials, `{"arr_current": 10.005}`},
		{"too many digits", access.SectionFinancials, `{"arr_current": 12345678901}`},
		{"burn rate over 10 digits", access.SectionFinancials, `{"burn_rate_detailed": 123456789}`},
		{"payback with 2 decimals", access.SectionFinancials, `{"cac_payback_period": 6.25}`},
		{"funding use huge exponent", access.SectionFinancials, `{"funding_use_breakdown": [{"category":"eng","percentage":1e-9999999}]}`},
		{"projection revenue huge", access.SectionFinancials, `{"financial_projections": [{"year": 2026, "revenue": 1e30}]}`},
		{"equity with 3 decimals", access.SectionPeople, `{"team_members": [{"name":"x","equity": 10.125}]}`},
		{"hiring budget huge", access.SectionPeople, `{"hiring_plan": {"budget_annual": 9e15}}`},
		{"uptime with 4 decimals", access.SectionTechnology, `{"uptime_statistics": 99.9999}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			clock := time.Now()
			s := newTestStore(repo, &clock)

			_, err := s.Update(context.Background(), "acme", tc.section, []byte(tc.patch))
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.saves)
		})
	}
}

func TestUpdate_ValidDocuments(t *testing.T) {
	cases := map[access.Section]string{
		access.SectionFinancials: `{"arr_current": "1200000.50", "gross_margin": 72.5,
			"funding_use_breakdown": [{"category":"engineering","percentage":"60"},{"category":"sales","percentage":"40"}],
			"financial_projections": [{"year": 2026, "revenue": 2000000, "expenses": 1500000}],
			"business_plan_url": "https://acme.io/plan.pdf"}`,
		access.SectionNews: `{"monthly_updates": [{"month":"2025-03","title":"March update","body":"..."}],
			"media_coverage": [{"title":"Acme raises seed","url":"https://news.example.com/acme","date":"2025-03-04"}],
			"quarterly_reports": [{"quarter":"Q1 2025","summary":"ok"}]}`,
		access.SectionTechnology: `{"technology_stack": {"backend": ["go", "postgres"]},
			"product_roadmap": [{"quarter":"Q4 2025","title":"SSO","status":"in_progress"}],
			"performance_metrics": [{"name":"p99","value":"120","unit":"ms"}],
			"uptime_statistics": 99.95, "compliance_standards": ["SOC2"]}`,
		access.SectionPeople: `{"team_members": [{"name":"Maria","equity": "12.50"}],
			"equity_distribution": {"founders_equity_total": 100.00},
			"hiring_plan": {"budget_annual": 9999999999.99}}`,
	}

	for section, patch := range cases {
		t.Run(string(section), func(t *testing.T) {
			repo := newTestRepo()
			clock := time.Now()
			s := newTestStore(repo, &clock)

			rec, err := s.Update(context.Background(), "acme", section, []byte(patch))
			require.NoError(t, err)
			assert.Equal(t, 1, repo.saves)
			assert.Equal(t, section, rec.Document.Section())
		})
	}
}

func TestLoad_Typed(t *testing.T) {
	clock := time.Now()
	s := newTestStore(newTestRepo(), &clock)

	_, err := s.Update(context.Background(), "acme", access.SectionFinancials, []byte(`{"cash_position": 500000}`))
	require.NoError(t, err)

	fin, err := Load[*Financials](context.Background(), s, "acme")
	require.NoError(t, err)
	require.True(t, fin.CashPosition.Valid)
	assert.True(t, fin.CashPosition.Decimal.Equal(decimal.NewFromInt(500000)))
	assert.False(t, fin.ARRCurrent.Valid)

	tech, err := Load[*Technology](context.Background(), s, "acme")
	require.NoError(t, err)
	assert.Empty(t, tech.Trademarks)
}

func TestUpdate_ListElementsDoNotInheritOldFields(t *testing.T) {
	clock := time.Now()
	s := newTestStore(newTestRepo(), &clock)
	ctx := context.Background()

	_, err := s.Update(ctx, "acme", access.SectionPeople,
		[]byte(`{"team_members": [{"name": "Maria", "email": "maria@acme.io", "equity": 40}]}`))
	require.NoError(t, err)

	rec, err := s.Update(ctx, "acme", access.SectionPeople, []byte(`{"team_members": [{"name": "Bob"}]}`))
	require.NoError(t, err)

	p := rec.Document.(*People)
	require.Len(t, p.TeamMembers, 1)
	assert.Equal(t, TeamMember{Name: "Bob"}, p.TeamMembers[0])
}

func TestUpdate_DecimalLimits(t *testing.T) {
	clock := time.Now()
	s := newTestStore(newTestRepo(), &clock)

	rec, err := s.Update(context.Background(), "acme", access.SectionFinancials, []byte(`{
		"arr_current": 9999999999.99, "cash_position": 1.500, "mrr_growth_rate": -12.5,
		"cac_payback_period": 7.5, "burn_rate_detailed": 1e7}`))
	require.NoError(t, err)

	fin := rec.Document.(*Financials)
	assert.Equal(t, "9999999999.99", fin.ARRCurrent.Decimal.String())
	assert.Equal(t, "1.5", fin.CashPosition.Decimal.String())
	assert.Equal(t, "10000000", fin.BurnRateDetailed.Decimal.String())

	tech, err := s.Update(context.Background(), "acme", access.SectionTechnology, []byte(`{"uptime_statistics": 99.999}`))
	require.NoError(t, err)
	assert.Equal(t, "99.999", tech.Document.(*Technology).UptimeStatistics.Decimal.String())
}

func TestUpdate_NullListsStoredAsEmpty(t *testing.T) {
	repo := newTestRepo()
	clock := time.Now()
	s := newTestStore(repo, &clock)

	_, err := s.Update(context.Background(), "acme", access.SectionPeople, []byte(`{
		"team_members": null, "advisory_board": null, "employee_benefits": null,
		"hiring_plan": {"quarters": [{"quarter": "Q1 2026", "headcount": 1}]}}`))
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(repo.rows["acme|"+string(access.SectionPeople)].Data, &stored))
	assert.Equal(t, []any{}, stored["team_members"])
	assert.Equal(t, []any{}, stored["advisory_board"])
	assert.Equal(t, []any{}, stored["employee_benefits"])
	quarters := stored["hiring_plan"].(map[string]any)["quarters"].([]any)
	require.Len(t, quarters, 1)
	assert.Equal(t, []any{}, quarters[0].(map[string]any)["roles"])

	_, err = s.Update(context.Background(), "acme", access.SectionPeople, []byte(`{"hiring_plan": {"quarters": null}}`))
	require.NoError(t, err)
	want, err := json.Marshal(newPeople())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(repo.rows["acme|"+string(access.SectionPeople)].Data))
}
