package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// IncomeScheduleInput describes an income stream: DeferYears of accumulation
// followed by DurationYears of inflating drawdown. Fees are part of the
// income portfolio convention and are always subtracted from the balance.
type IncomeScheduleInput struct {
	StartYear       int
	DurationYears   int
	InitialDrawdown decimal.Decimal
	Inflation       decimal.Decimal
	IncomeReturn    decimal.Decimal
	GrowthReturn    decimal.Decimal
	Tax             domain.TaxSchedule
	FeeRate         decimal.Decimal
	DeferYears      int

	// StartCapital, when nil, is solved for.
	StartCapital *decimal.Decimal

	P1Age *int
	P2Age *int
}

// BuildIncomePortfolio sizes and projects an income stream. Inflation is
// clocked from the first drawdown year, not from the start of the deferral:
// an amount requested for the first active year is paid at face value in that
// year no matter how long the capital accumulated beforehand.
func BuildIncomePortfolio(in IncomeScheduleInput) (decimal.Decimal, []domain.ProjectionRow) {
	totalYears := in.DeferYears + in.DurationYears
	years := yearSpan(in.StartYear, totalYears)

	drawdowns := make([]decimal.Decimal, 0, totalYears)
	for i := 0; i < in.DeferYears; i++ {
		drawdowns = append(drawdowns, decimal.Zero)
	}
	for i := 0; i < in.DurationYears; i++ {
		drawdowns = append(drawdowns, escalate(in.InitialDrawdown, in.Inflation, i))
	}

	startCapital := solveUnlessGiven(in.StartCapital, SolveInput{
		Years:        years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    drawdowns,
		SubtractFees: true,
	})

	rows := Project(ProjectionInput{
		StartCapital: startCapital,
		Years:        years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    drawdowns,
		SubtractFees: true,
		P1Age:        in.P1Age,
		P2Age:        in.P2Age,
	})

	return startCapital, rows
}

// solveUnlessGiven returns the explicit capital when one was supplied,
// otherwise runs the solver.
func solveUnlessGiven(explicit *decimal.Decimal, in SolveInput) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	return SolveRequiredCapital(in)
}
