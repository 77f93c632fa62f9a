package domain

import (
	"github.com/shopspring/decimal"
)

// Profile identifies the household the plan is computed for. Ages are derived
// from birth dates against the plan's fixed reference year.
type Profile struct {
	P1Name   string  `json:"p1_name" yaml:"p1_name"`
	P1DOB    string  `json:"p1_dob" yaml:"p1_dob"`
	P2Name   string  `json:"p2_name" yaml:"p2_name"`
	P2DOB    string  `json:"p2_dob" yaml:"p2_dob"`
	Children []Child `json:"children" yaml:"children"`
}

// Child is a dependent listed on the profile. Children do not affect the
// capital computation; their ages are carried through for display.
type Child struct {
	Name string `json:"name" yaml:"name"`
	DOB  string `json:"dob" yaml:"dob"`
}

// ChildAge pairs a child's name with their age at the plan reference year.
type ChildAge struct {
	Name       string `json:"name" yaml:"name"`
	BirthYear  int    `json:"birth_year" yaml:"birth_year"`
	CurrentAge int    `json:"current_age" yaml:"current_age"`
}

// Assumptions are the global rate assumptions applied to every item that does
// not override them. Rates are fractions (0.045 = 4.5%).
type Assumptions struct {
	IncomeReturn decimal.Decimal `json:"income_return" yaml:"income_return"`
	GrowthReturn decimal.Decimal `json:"growth_return" yaml:"growth_return"`
	TaxRate      decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`
	Inflation    decimal.Decimal `json:"inflation" yaml:"inflation"`
	FeeLoad      decimal.Decimal `json:"fee_load" yaml:"fee_load"`

	// TaxFreeAge, when set, zeroes the income-return tax for every simulated
	// year at or beyond this client age.
	TaxFreeAge *int `json:"tax_free_age,omitempty" yaml:"tax_free_age,omitempty"`
}

// PlanItem is the generic item shape shared by income stages, vehicles,
// discretionary assets, travel habits and the medical buffer. Which fields are
// meaningful depends on the category that lists the item.
type PlanItem struct {
	Name string `json:"name" yaml:"name"`

	// Income stages: net annual amount needed, in today's money.
	Income decimal.Decimal `json:"income" yaml:"income"`

	// Active window as client ages.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`

	// Vehicles, assets, travel, medical: cost in today's money.
	Cost decimal.Decimal `json:"cost" yaml:"cost"`

	// Vehicles: years between replacements (0 = one-off purchase).
	Cycle int `json:"cycle" yaml:"cycle"`

	// Vehicles, assets: annual holding cost (insurance, maintenance).
	Holding decimal.Decimal `json:"holding" yaml:"holding"`

	// Assets: value recovered when the asset is sold at plan end.
	Resale decimal.Decimal `json:"resale" yaml:"resale"`

	// Vehicles: value of the old vehicle at each replacement. Zero means 30%
	// of the inflated purchase cost.
	TradeIn decimal.Decimal `json:"tradein" yaml:"tradein"`

	// FundingStart is the age at which accumulation toward this item begins,
	// when different from the item's start age.
	FundingStart *int `json:"funding_start,omitempty" yaml:"funding_start,omitempty"`

	// ApplyInflation controls the builder's internal cost escalation for
	// vehicles and assets. Nil means true.
	ApplyInflation *bool `json:"apply_inflation,omitempty" yaml:"apply_inflation,omitempty"`

	// Portfolio names a preset ("conservative"/"balanced"/"growth"). Empty
	// means auto-select from the item's duration.
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio,omitempty"`

	// Per-field overrides; nil means resolve from preset or global
	// assumptions.
	IncomeReturn *decimal.Decimal `json:"income_return,omitempty" yaml:"income_return,omitempty"`
	GrowthReturn *decimal.Decimal `json:"growth_return,omitempty" yaml:"growth_return,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty"`
	FeeLoad      *decimal.Decimal `json:"fee_load,omitempty" yaml:"fee_load,omitempty"`
}

// Inflates reports whether the builder's internal escalation applies.
func (it *PlanItem) Inflates() bool {
	return it.ApplyInflation == nil || *it.ApplyInflation
}

// Plan is the scenario document: one household, global assumptions, and the
// category-partitioned item lists.
type Plan struct {
	Profile     Profile     `json:"profile" yaml:"profile"`
	Assumptions Assumptions `json:"assumptions" yaml:"assumptions"`

	Incomes  []PlanItem `json:"incomes" yaml:"incomes"`
	Vehicles []PlanItem `json:"vehicles" yaml:"vehicles"`
	Assets   []PlanItem `json:"assets" yaml:"assets"`
	Travel   []PlanItem `json:"travel" yaml:"travel"`
	Medical  *PlanItem  `json:"medical,omitempty" yaml:"medical,omitempty"`

	// UniversalFundAge, when set, overrides every item's own funding-start
	// age.
	UniversalFundAge *int `json:"universal_fund_age,omitempty" yaml:"universal_fund_age,omitempty"`
}

// ItemResult is the computed funding requirement for a single plan item.
type ItemResult struct {
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Details  string `json:"details" yaml:"details"`

	// CapitalRequired is the present value at the client's current age;
	// CapitalAtFundAge is the undiscounted figure at the funding age.
	CapitalRequired  decimal.Decimal `json:"capital_required" yaml:"capital_required"`
	CapitalAtFundAge decimal.Decimal `json:"capital_at_fund_age" yaml:"capital_at_fund_age"`
	FundAge          int             `json:"fund_age" yaml:"fund_age"`

	Rows []ProjectionRow `json:"rows" yaml:"rows"`

	// AssetDetail is aligned with Rows for vehicle and asset items, nil
	// otherwise.
	AssetDetail []AssetYearDetail `json:"asset_detail,omitempty" yaml:"asset_detail,omitempty"`

	PortfolioUsed string  `json:"portfolio_used" yaml:"portfolio_used"`
	Returns       RateSet `json:"item_returns" yaml:"item_returns"`
}

// PlanResult is the full aggregator output: ordered per-item results and the
// grand-total capital required today.
type PlanResult struct {
	Items        []ItemResult    `json:"items" yaml:"items"`
	TotalCapital decimal.Decimal `json:"total_capital" yaml:"total_capital"`

	CurrentAgeP1 int        `json:"current_age_p1" yaml:"current_age_p1"`
	CurrentAgeP2 int        `json:"current_age_p2" yaml:"current_age_p2"`
	Children     []ChildAge `json:"children,omitempty" yaml:"children,omitempty"`
}
