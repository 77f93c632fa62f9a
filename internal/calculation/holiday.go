package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// HolidayScheduleInput describes a recurring lump-sum need: a trip (or any
// periodic expense such as a medical buffer) costing TripCost every
// TripFrequencyYears. Fees are not subtracted.
type HolidayScheduleInput struct {
	StartYear          int
	DurationYears      int
	TripCost           decimal.Decimal
	TripFrequencyYears int
	Inflation          decimal.Decimal
	IncomeReturn       decimal.Decimal
	GrowthReturn       decimal.Decimal
	Tax                domain.TaxSchedule
	FeeRate            decimal.Decimal
	DeferYears         int

	// StartCapital, when nil, is solved for.
	StartCapital *decimal.Decimal

	P1Age *int
	P2Age *int
}

// BuildHolidayPortfolio sizes and projects a recurring lump-sum schedule.
// Active year i draws the inflated cost when i falls on the trip frequency
// (i == 0, one frequency later, and so on) and nothing otherwise. A
// non-positive frequency schedules no trips at all.
func BuildHolidayPortfolio(in HolidayScheduleInput) (decimal.Decimal, []domain.ProjectionRow) {
	totalYears := in.DeferYears + in.DurationYears
	years := yearSpan(in.StartYear, totalYears)

	drawdowns := make([]decimal.Decimal, 0, totalYears)
	for i := 0; i < in.DeferYears; i++ {
		drawdowns = append(drawdowns, decimal.Zero)
	}
	for i := 0; i < in.DurationYears; i++ {
		if in.TripFrequencyYears > 0 && i%in.TripFrequencyYears == 0 {
			drawdowns = append(drawdowns, escalate(in.TripCost, in.Inflation, i))
		} else {
			drawdowns = append(drawdowns, decimal.Zero)
		}
	}

	startCapital := solveUnlessGiven(in.StartCapital, SolveInput{
		Years:        years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    drawdowns,
		SubtractFees: false,
	})

	rows := Project(ProjectionInput{
		StartCapital: startCapital,
		Years:        years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    drawdowns,
		SubtractFees: false,
		P1Age:        in.P1Age,
		P2Age:        in.P2Age,
	})

	return startCapital, rows
}
