package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxScheduleFlat(t *testing.T) {
	ts := FlatTax(decimal.NewFromFloat(0.15))

	assert.False(t, ts.IsPerYear())
	for _, i := range []int{0, 1, 50, 99} {
		assert.True(t, ts.RateForYear(i).Equal(decimal.NewFromFloat(0.15)),
			"flat schedule should apply the same rate to year %d", i)
	}
}

func TestTaxSchedulePerYear(t *testing.T) {
	rates := []decimal.Decimal{
		decimal.NewFromFloat(0.15),
		decimal.NewFromFloat(0.15),
		decimal.Zero,
	}
	ts := PerYearTax(rates)

	assert.True(t, ts.IsPerYear())
	assert.True(t, ts.RateForYear(0).Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, ts.RateForYear(1).Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, ts.RateForYear(2).IsZero())
}

func TestTaxSchedulePerYearBeyondLength(t *testing.T) {
	// A short per-year sequence yields 0% beyond its length, never a flat
	// fallback. The tax-free-age construction depends on this.
	ts := PerYearTax([]decimal.Decimal{decimal.NewFromFloat(0.30)})

	assert.True(t, ts.RateForYear(0).Equal(decimal.NewFromFloat(0.30)))
	assert.True(t, ts.RateForYear(1).IsZero())
	assert.True(t, ts.RateForYear(10).IsZero())
	assert.True(t, ts.RateForYear(-1).IsZero())
}

func TestTerminalBalance(t *testing.T) {
	assert.True(t, TerminalBalance(nil).IsZero())
	assert.True(t, TerminalBalance([]ProjectionRow{}).IsZero())

	rows := []ProjectionRow{
		{ClosingBalance: decimal.NewFromInt(500)},
		{ClosingBalance: decimal.NewFromInt(-12)},
	}
	assert.True(t, TerminalBalance(rows).Equal(decimal.NewFromInt(-12)))
}

func TestPlanItemInflates(t *testing.T) {
	var item PlanItem
	assert.True(t, item.Inflates(), "nil apply_inflation defaults to true")

	off := false
	item.ApplyInflation = &off
	assert.False(t, item.Inflates())

	on := true
	item.ApplyInflation = &on
	assert.True(t, item.Inflates())
}
