package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// solverIterations is the fixed bisection count. The solve always runs the
// full count rather than exiting on convergence.
const solverIterations = 100

var (
	// depletionTolerance accepts a terminal balance this far below zero as
	// "depleted to exactly zero", absorbing float noise in long schedules.
	depletionTolerance = decimal.NewFromFloat(-0.01)

	// upperBoundFactor scales the summed drawdowns into the initial upper
	// bracket; fallbackUpperBound covers schedules with no net outflow.
	upperBoundFactor   = decimal.NewFromInt(20)
	fallbackUpperBound = decimal.NewFromInt(1000000)
)

// SolveInput mirrors ProjectionInput minus the starting capital being solved
// for.
type SolveInput struct {
	Years        []int
	IncomeReturn decimal.Decimal
	GrowthReturn decimal.Decimal
	Tax          domain.TaxSchedule
	FeeRate      decimal.Decimal
	Drawdowns    []decimal.Decimal
	SubtractFees bool
}

// SolveRequiredCapital finds the minimal starting capital whose terminal
// closing balance is non-negative (within depletionTolerance), by bisection
// over Project. The terminal balance is monotone non-decreasing in starting
// capital for fixed rates and schedule, so bisection is sound.
//
// The upper bracket is 20 times the summed drawdowns (or a fixed 1,000,000
// when the schedule has no positive total) and is never verified: if it is
// insufficient, the solve silently returns an under-funded figure. Known
// limitation, kept so numeric outputs stay stable.
func SolveRequiredCapital(in SolveInput) decimal.Decimal {
	var totalDrawdown decimal.Decimal
	for _, d := range in.Drawdowns {
		totalDrawdown = totalDrawdown.Add(d)
	}

	low := decimal.Zero
	high := fallbackUpperBound
	if totalDrawdown.IsPositive() {
		high = totalDrawdown.Mul(upperBoundFactor)
	}

	requiredCapital := high
	two := decimal.NewFromInt(2)

	for iter := 0; iter < solverIterations; iter++ {
		mid := low.Add(high).Div(two)

		rows := Project(ProjectionInput{
			StartCapital: mid,
			Years:        in.Years,
			IncomeReturn: in.IncomeReturn,
			GrowthReturn: in.GrowthReturn,
			Tax:          in.Tax,
			FeeRate:      in.FeeRate,
			Drawdowns:    in.Drawdowns,
			SubtractFees: in.SubtractFees,
		})

		if domain.TerminalBalance(rows).GreaterThanOrEqual(depletionTolerance) {
			requiredCapital = mid
			high = mid
		} else {
			low = mid
		}
	}

	return requiredCapital
}
