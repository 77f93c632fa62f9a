package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeplan/capital-planner/internal/domain"
)

func decimalEq(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, expected.Equal(actual),
		"expected %s, got %s %v", expected.String(), actual.String(), msgAndArgs)
}

func TestProjectSingleYear(t *testing.T) {
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(1000),
		Years:        []int{2026},
		IncomeReturn: decimal.NewFromFloat(0.04),
		GrowthReturn: decimal.NewFromFloat(0.05),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.20)),
		FeeRate:      decimal.NewFromFloat(0.01),
		Drawdowns:    []decimal.Decimal{decimal.NewFromInt(100)},
		SubtractFees: true,
	})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2026, row.Year)
	decimalEq(t, decimal.NewFromInt(1000), row.OpeningBalance)
	decimalEq(t, decimal.NewFromInt(40), row.IncomeReturn)
	decimalEq(t, decimal.NewFromInt(8), row.Tax)
	decimalEq(t, decimal.NewFromInt(32), row.IncomeNet)
	decimalEq(t, decimal.NewFromInt(50), row.Growth)
	decimalEq(t, decimal.NewFromInt(10), row.Fees)
	decimalEq(t, decimal.NewFromInt(100), row.Drawdown)
	// 1000 + 50 + 32 - 100 - 10
	decimalEq(t, decimal.NewFromInt(972), row.ClosingBalance)
}

func TestProjectFeesNotSubtracted(t *testing.T) {
	in := ProjectionInput{
		StartCapital: decimal.NewFromInt(1000),
		Years:        []int{2026},
		IncomeReturn: decimal.NewFromFloat(0.04),
		GrowthReturn: decimal.NewFromFloat(0.05),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.20)),
		FeeRate:      decimal.NewFromFloat(0.01),
		Drawdowns:    []decimal.Decimal{decimal.NewFromInt(100)},
		SubtractFees: false,
	}
	rows := Project(in)
	require.Len(t, rows, 1)

	// Fees are still reported on the row but never leave the balance.
	decimalEq(t, decimal.NewFromInt(10), rows[0].Fees)
	decimalEq(t, decimal.NewFromInt(982), rows[0].ClosingBalance)
}

func TestProjectBalanceContinuity(t *testing.T) {
	drawdowns := make([]decimal.Decimal, 10)
	for i := range drawdowns {
		drawdowns[i] = decimal.NewFromInt(int64(1000 * (i + 1)))
	}
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(50000),
		Years:        yearSpan(2026, 10),
		IncomeReturn: decimal.NewFromFloat(0.035),
		GrowthReturn: decimal.NewFromFloat(0.045),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.15)),
		FeeRate:      decimal.NewFromFloat(0.011),
		Drawdowns:    drawdowns,
		SubtractFees: true,
	})
	require.Len(t, rows, 10)

	for i := 1; i < len(rows); i++ {
		decimalEq(t, rows[i-1].ClosingBalance, rows[i].OpeningBalance,
			"year %d opening must equal prior closing", rows[i].Year)
		assert.Equal(t, rows[i-1].Year+1, rows[i].Year)
	}
}

func TestProjectNegativeDrawdownIsInflow(t *testing.T) {
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(100),
		Years:        []int{2026},
		Tax:          domain.FlatTax(decimal.Zero),
		Drawdowns:    []decimal.Decimal{decimal.NewFromInt(-40)},
	})
	require.Len(t, rows, 1)
	decimalEq(t, decimal.NewFromInt(140), rows[0].ClosingBalance)
}

func TestProjectDrawdownsShorterThanYears(t *testing.T) {
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(100),
		Years:        yearSpan(2026, 3),
		Tax:          domain.FlatTax(decimal.Zero),
		Drawdowns:    []decimal.Decimal{decimal.NewFromInt(25)},
	})
	require.Len(t, rows, 3)
	decimalEq(t, decimal.NewFromInt(25), rows[0].Drawdown)
	decimalEq(t, decimal.Zero, rows[1].Drawdown)
	decimalEq(t, decimal.Zero, rows[2].Drawdown)
	decimalEq(t, decimal.NewFromInt(75), rows[2].ClosingBalance)
}

func TestProjectPerYearTaxZeroesBeyondSchedule(t *testing.T) {
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(1000),
		Years:        yearSpan(2026, 3),
		IncomeReturn: decimal.NewFromFloat(0.10),
		Tax:          domain.PerYearTax([]decimal.Decimal{decimal.NewFromFloat(0.50)}),
		Drawdowns:    nil,
	})
	require.Len(t, rows, 3)

	assert.True(t, rows[0].Tax.IsPositive(), "scheduled year carries tax")
	assert.True(t, rows[1].Tax.IsZero(), "year past the schedule is untaxed")
	assert.True(t, rows[2].Tax.IsZero())
}

func TestProjectAgeColumns(t *testing.T) {
	p1, p2 := 60, 58
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(100),
		Years:        yearSpan(2026, 3),
		Tax:          domain.FlatTax(decimal.Zero),
		P1Age:        &p1,
		P2Age:        &p2,
	})
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.NotNil(t, row.P1Age)
		require.NotNil(t, row.P2Age)
		assert.Equal(t, 60+i, *row.P1Age)
		assert.Equal(t, 58+i, *row.P2Age)
	}
}

func TestProjectEmptyYears(t *testing.T) {
	rows := Project(ProjectionInput{
		StartCapital: decimal.NewFromInt(100),
		Tax:          domain.FlatTax(decimal.Zero),
	})
	assert.Empty(t, rows)
}

func TestProjectDeterministic(t *testing.T) {
	in := ProjectionInput{
		StartCapital: decimal.NewFromInt(250000),
		Years:        yearSpan(2026, 25),
		IncomeReturn: decimal.NewFromFloat(0.035),
		GrowthReturn: decimal.NewFromFloat(0.045),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.15)),
		FeeRate:      decimal.NewFromFloat(0.011),
		Drawdowns:    []decimal.Decimal{decimal.NewFromInt(20000)},
		SubtractFees: true,
	}
	first := Project(in)
	second := Project(in)
	require.Equal(t, len(first), len(second))
	for i := range first {
		decimalEq(t, first[i].ClosingBalance, second[i].ClosingBalance)
	}
}

func TestYearSpan(t *testing.T) {
	assert.Nil(t, yearSpan(2026, 0))
	assert.Nil(t, yearSpan(2026, -3))
	assert.Equal(t, []int{2030, 2031, 2032}, yearSpan(2030, 3))
}

func TestEscalate(t *testing.T) {
	base := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.03)

	decimalEq(t, base, escalate(base, rate, 0))
	decimalEq(t, base, escalate(base, rate, -1))
	decimalEq(t, decimal.NewFromInt(1030), escalate(base, rate, 1))

	// (1.03)^2 = 1.0609
	decimalEq(t, decimal.NewFromFloat(1060.9), escalate(base, rate, 2))
}
