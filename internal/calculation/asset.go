package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// AssetScheduleInput describes a depreciating asset (vehicle, boat, caravan)
// with an optional replacement cycle. Fees are not subtracted from asset
// portfolios.
type AssetScheduleInput struct {
	StartYear         int
	DurationYears     int
	PurchaseValue     decimal.Decimal
	ReplacementCycle  int
	AnnualHoldingCost decimal.Decimal
	TradeInValue      decimal.Decimal
	Inflation         decimal.Decimal
	IncomeReturn      decimal.Decimal
	GrowthReturn      decimal.Decimal
	Tax               domain.TaxSchedule
	FeeRate           decimal.Decimal
	DeferYears        int

	// SellAtEnd triggers one extra trade-in credit in the final active year,
	// unless a scheduled replacement already sold the asset that year.
	SellAtEnd bool

	// StartCapital, when nil, is solved for.
	StartCapital *decimal.Decimal

	P1Age *int
	P2Age *int
}

// BuildAssetPortfolio sizes and projects an asset schedule. Each active year
// carries the inflated holding cost; year 0 adds the initial purchase; each
// replacement year adds a purchase and credits the old asset's trade-in value.
// Net drawdown for a year is holding + purchase - trade-in, so replacement
// years with a large trade-in can be net inflows.
//
// When the capital is solved for, all inflow years are floored to zero first:
// sizing never assumes future sale proceeds fund present costs. The displayed
// projection keeps the true signed flows.
func BuildAssetPortfolio(in AssetScheduleInput) (decimal.Decimal, []domain.ProjectionRow, []domain.AssetYearDetail) {
	totalYears := in.DeferYears + in.DurationYears
	years := yearSpan(in.StartYear, totalYears)

	drawdowns := make([]decimal.Decimal, 0, totalYears)
	details := make([]domain.AssetYearDetail, 0, totalYears)

	for i := 0; i < in.DeferYears; i++ {
		drawdowns = append(drawdowns, decimal.Zero)
		details = append(details, domain.AssetYearDetail{})
	}

	for i := 0; i < in.DurationYears; i++ {
		inflatedHolding := escalate(in.AnnualHoldingCost, in.Inflation, i)
		inflatedPurchase := escalate(in.PurchaseValue, in.Inflation, i)
		inflatedTradeIn := escalate(in.TradeInValue, in.Inflation, i)

		purchase := decimal.Zero
		tradeIn := decimal.Zero
		cashFlow := inflatedHolding

		onCycle := in.ReplacementCycle > 0 && i%in.ReplacementCycle == 0
		if i == 0 {
			// Initial purchase; nothing to trade in yet.
			purchase = inflatedPurchase
			cashFlow = cashFlow.Add(purchase)
		} else if onCycle {
			tradeIn = inflatedTradeIn
			purchase = inflatedPurchase
			cashFlow = cashFlow.Sub(tradeIn).Add(purchase)
		}

		// Final-year disposal. Skipped when the cycle already sold the asset
		// this year, so the credit is never doubled.
		if in.SellAtEnd && i == in.DurationYears-1 && !onCycle {
			tradeIn = tradeIn.Add(inflatedTradeIn)
			cashFlow = cashFlow.Sub(inflatedTradeIn)
		}

		drawdowns = append(drawdowns, cashFlow)
		details = append(details, domain.AssetYearDetail{
			PurchaseCost: purchase,
			TradeInValue: tradeIn,
			HoldingCost:  inflatedHolding,
		})
	}

	startCapital := solveUnlessGiven(in.StartCapital, SolveInput{
		Years:        years,
		IncomeReturn: in.IncomeReturn,
		GrowthReturn: in.GrowthReturn,
		Tax:          in.Tax,
		FeeRate:      in.FeeRate,
		Drawdowns:    floorInflows(drawdowns),
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

	return startCapital, rows, details
}

// floorInflows copies the schedule with every negative (inflow) entry
// replaced by zero.
func floorInflows(drawdowns []decimal.Decimal) []decimal.Decimal {
	costOnly := make([]decimal.Decimal, len(drawdowns))
	for i, d := range drawdowns {
		if d.IsPositive() {
			costOnly[i] = d
		} else {
			costOnly[i] = decimal.Zero
		}
	}
	return costOnly
}
