package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow represents the cash flow of a single simulated year.
// Balances chain: the next year's OpeningBalance equals this year's
// ClosingBalance.
type ProjectionRow struct {
	Year           int             `json:"year" yaml:"year"`
	OpeningBalance decimal.Decimal `json:"opening_balance" yaml:"opening_balance"`
	IncomeReturn   decimal.Decimal `json:"income_return" yaml:"income_return"`
	Tax            decimal.Decimal `json:"tax" yaml:"tax"`
	IncomeNet      decimal.Decimal `json:"income_net" yaml:"income_net"`
	Growth         decimal.Decimal `json:"growth" yaml:"growth"`
	Fees           decimal.Decimal `json:"fees" yaml:"fees"`
	Drawdown       decimal.Decimal `json:"drawdown" yaml:"drawdown"`
	ClosingBalance decimal.Decimal `json:"closing_balance" yaml:"closing_balance"`

	// Client ages for the row, present only when ages were supplied.
	P1Age *int `json:"p1_age,omitempty" yaml:"p1_age,omitempty"`
	P2Age *int `json:"p2_age,omitempty" yaml:"p2_age,omitempty"`
}

// AssetYearDetail carries the per-year breakdown columns emitted by the asset
// schedule builder, aligned one-to-one with the projection rows.
type AssetYearDetail struct {
	PurchaseCost decimal.Decimal `json:"purchase_cost" yaml:"purchase_cost"`
	TradeInValue decimal.Decimal `json:"trade_in_value" yaml:"trade_in_value"`
	HoldingCost  decimal.Decimal `json:"holding_cost" yaml:"holding_cost"`
}

// RateSet holds the rate and fee assumptions resolved for one item.
// Immutable once resolved.
type RateSet struct {
	IncomeReturn decimal.Decimal `json:"income_return" yaml:"income_return"`
	GrowthReturn decimal.Decimal `json:"growth_return" yaml:"growth_return"`
	TaxRate      decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`
	FeeRate      decimal.Decimal `json:"fee_rate" yaml:"fee_rate"`
}

// TaxSchedule is a tagged variant: either a flat rate applied to every
// simulated year, or an explicit per-year sequence of rates.
//
// A per-year sequence shorter than the simulated horizon yields a 0% rate for
// every year beyond its length. It does NOT fall back to the flat rate; the
// tax-free-age schedule construction relies on this zeroing.
type TaxSchedule struct {
	flat    decimal.Decimal
	perYear []decimal.Decimal
	isSched bool
}

// FlatTax returns a schedule applying rate to every year.
func FlatTax(rate decimal.Decimal) TaxSchedule {
	return TaxSchedule{flat: rate}
}

// PerYearTax returns a schedule applying rates[i] to year i and 0% to every
// year at or beyond len(rates).
func PerYearTax(rates []decimal.Decimal) TaxSchedule {
	return TaxSchedule{perYear: rates, isSched: true}
}

// IsPerYear reports whether the schedule is an explicit per-year sequence.
func (ts TaxSchedule) IsPerYear() bool { return ts.isSched }

// RateForYear resolves the tax rate for 0-based year index i.
func (ts TaxSchedule) RateForYear(i int) decimal.Decimal {
	if ts.isSched {
		if i >= 0 && i < len(ts.perYear) {
			return ts.perYear[i]
		}
		return decimal.Zero
	}
	return ts.flat
}

// TerminalBalance returns the closing balance of the final row, or zero for an
// empty projection.
func TerminalBalance(rows []ProjectionRow) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return rows[len(rows)-1].ClosingBalance
}
