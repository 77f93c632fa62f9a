package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lifeplan/capital-planner/internal/domain"
)

func TestSolveRequiredCapitalRoundTrip(t *testing.T) {
	drawdowns := make([]decimal.Decimal, 20)
	for i := range drawdowns {
		drawdowns[i] = escalate(decimal.NewFromInt(40000), decimal.NewFromFloat(0.03), i)
	}
	in := SolveInput{
		Years:        yearSpan(2026, 20),
		IncomeReturn: decimal.NewFromFloat(0.035),
		GrowthReturn: decimal.NewFromFloat(0.045),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.15)),
		FeeRate:      decimal.NewFromFloat(0.011),
		Drawdowns:    drawdowns,
		SubtractFees: true,
	}

	capital := SolveRequiredCapital(in)
	assert.True(t, capital.IsPositive())

	// The solved figure must survive its own schedule.
	rows := Project(ProjectionInput{
		StartCapital: capital,
		Years:        in.Years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    in.Drawdowns,
		SubtractFees: in.SubtractFees,
	})
	terminal := domain.TerminalBalance(rows)
	assert.True(t, terminal.GreaterThanOrEqual(decimal.NewFromFloat(-0.01)),
		"terminal balance %s dips below tolerance", terminal.String())

	// And it must be minimal: shaving 1% off depletes the portfolio early.
	short := Project(ProjectionInput{
		StartCapital: capital.Mul(decimal.NewFromFloat(0.99)),
		Years:        in.Years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    in.Drawdowns,
		SubtractFees: in.SubtractFees,
	})
	assert.True(t, domain.TerminalBalance(short).LessThan(decimal.NewFromFloat(-0.01)))
}

func TestSolveRequiredCapitalSingleYearExact(t *testing.T) {
	// One year, no returns, no fees: the answer is the drawdown itself.
	capital := SolveRequiredCapital(SolveInput{
		Years:     []int{2026},
		Tax:       domain.FlatTax(decimal.Zero),
		Drawdowns: []decimal.Decimal{decimal.NewFromInt(50000)},
	})

	// The depletion tolerance admits answers a cent short of the exact figure.
	diff := capital.Sub(decimal.NewFromInt(50000)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.02)),
		"expected ~50000, got %s", capital.String())
}

func TestSolveRequiredCapitalZeroSchedule(t *testing.T) {
	// Nothing drawn means no capital needed; the bracket collapses toward
	// zero from the fixed fallback bound.
	capital := SolveRequiredCapital(SolveInput{
		Years:     yearSpan(2026, 5),
		Tax:       domain.FlatTax(decimal.Zero),
		Drawdowns: []decimal.Decimal{decimal.Zero, decimal.Zero, decimal.Zero},
	})
	assert.True(t, capital.LessThan(decimal.NewFromFloat(0.01)),
		"expected ~0, got %s", capital.String())
	assert.False(t, capital.IsNegative())
}

func TestSolveRequiredCapitalMoreCapitalNeverHurts(t *testing.T) {
	drawdowns := []decimal.Decimal{
		decimal.NewFromInt(30000),
		decimal.NewFromInt(30000),
		decimal.NewFromInt(30000),
	}
	in := ProjectionInput{
		Years:        yearSpan(2026, 3),
		IncomeReturn: decimal.NewFromFloat(0.04),
		GrowthReturn: decimal.NewFromFloat(0.02),
		Tax:          domain.FlatTax(decimal.NewFromFloat(0.20)),
		FeeRate:      decimal.NewFromFloat(0.01),
		Drawdowns:    drawdowns,
		SubtractFees: true,
	}

	prev := decimal.NewFromInt(-1 << 30)
	for _, start := range []int64{0, 50000, 80000, 90000, 200000} {
		in.StartCapital = decimal.NewFromInt(start)
		terminal := domain.TerminalBalance(Project(in))
		assert.True(t, terminal.GreaterThanOrEqual(prev),
			"terminal balance must not decrease as starting capital grows")
		prev = terminal
	}
}
