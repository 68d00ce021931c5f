package privatedata

import (
	"fmt"

	"venture-hub/internal/access"

	"github.com/shopspring/decimal"
)

type Financials struct {
	ARRCurrent          decimal.NullDecimal `json:"arr_current"`
	MRRGrowthRate       decimal.NullDecimal `json:"mrr_growth_rate"`
	RevenueForecast12m  decimal.NullDecimal `json:"revenue_forecast_12m"`
	RevenueForecast24m  decimal.NullDecimal `json:"revenue_forecast_24m"`
	CACPaybackPeriod    decimal.NullDecimal `json:"cac_payback_period"`
	GrossMargin         decimal.NullDecimal `json:"gross_margin"`
	NetRevenueRetention decimal.NullDecimal `json:"net_revenue_retention"`
	CashPosition        decimal.NullDecimal `json:"cash_position"`
	BurnRateDetailed    decimal.NullDecimal `json:"burn_rate_detailed"`

	RunwayCalculation   string `json:"runway_calculation"`
	CurrentRoundDetails string `json:"current_round_details"`
	PreviousInvestors   string `json:"previous_investors"`
	TermsAndConditions  string `json:"terms_and_conditions"`

	FinancialStatementsURL string `json:"financial_statements_url"`
	CapTableURL            string `json:"cap_table_url"`
	BusinessPlanURL        string `json:"business_plan_url"`

	FundingUseBreakdown  []FundingUse `json:"funding_use_breakdown"`
	FinancialProjections []Projection `json:"financial_projections"`
}

// FundingUse: destino de la ronda. La suma de porcentajes no puede pasar de 100.
type FundingUse struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
}

type Projection struct {
	Year     int                 `json:"year"`
	Revenue  decimal.NullDecimal `json:"revenue"`
	Expenses decimal.NullDecimal `json:"expenses"`
}

func newFinancials() *Financials {
	return &Financials{
		FundingUseBreakdown:  []FundingUse{},
		FinancialProjections: []Projection{},
	}
}

func (*Financials) Section() access.Section { return access.SectionFinancials }

func (f *Financials) normalize() {
	f.FundingUseBreakdown = emptyIfNil(f.FundingUseBreakdown)
	f.FinancialProjections = emptyIfNil(f.FinancialProjections)
}

func (f *Financials) Validate() error {
	if err := firstErr(
		checkMoney("arr_current", f.ARRCurrent),
		checkAmount("mrr_growth_rate", f.MRRGrowthRate, 5, 2),
		checkMoney("revenue_forecast_12m", f.RevenueForecast12m),
		checkMoney("revenue_forecast_24m", f.RevenueForecast24m),
		checkNonNegative("cac_payback_period", f.CACPaybackPeriod, 5, 1),
		checkPercent("gross_margin", f.GrossMargin),
		checkNonNegative("net_revenue_retention", f.NetRevenueRetention, 5, 2),
		checkMoney("cash_position", f.CashPosition),
		checkNonNegative("burn_rate_detailed", f.BurnRateDetailed, 10, 2),
		checkURL("financial_statements_url", f.FinancialStatementsURL),
		checkURL("cap_table_url", f.CapTableURL),
		checkURL("business_plan_url", f.BusinessPlanURL),
	); err != nil {
		return err
	}

	total := decimal.Zero
	for i, u := range f.FundingUseBreakdown {
		field := fmt.Sprintf("funding_use_breakdown[%d]", i)
		if err := required(field+".category", u.Category); err != nil {
			return err
		}
		if err := percentValue(field+".percentage", u.Percentage, percentScale); err != nil {
			return err
		}
		total = total.Add(u.Percentage)
	}
	if total.GreaterThan(hundred) {
		return invalid("funding_use_breakdown", "percentages must not add up to more than 100")
	}

	for i, p := range f.FinancialProjections {
		field := fmt.Sprintf("financial_projections[%d]", i)
		if p.Year < 1900 || p.Year > 2200 {
			return invalid(field+".year", "is out of range")
		}
		if err := firstErr(
			checkAmount(field+".revenue", p.Revenue, moneyDigits, moneyScale),
			checkMoney(field+".expenses", p.Expenses),
		); err != nil {
			return err
		}
	}
	return nil
}
