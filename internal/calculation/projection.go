package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// ProjectionInput carries everything needed to simulate one portfolio year by
// year. Drawdowns align one-to-one with Years; positive amounts leave the
// portfolio, negative amounts return to it. Years beyond the drawdown
// schedule draw nothing.
type ProjectionInput struct {
	StartCapital decimal.Decimal
	Years        []int
	IncomeReturn decimal.Decimal
	GrowthReturn decimal.Decimal
	Tax          domain.TaxSchedule
	FeeRate      decimal.Decimal
	Drawdowns    []decimal.Decimal
	SubtractFees bool

	// Optional client ages at the first simulated year; when set, each row
	// carries the ages incremented by the row index.
	P1Age *int
	P2Age *int
}

// Project simulates the portfolio over the given years and returns one row
// per year. For each year, in order: fees accrue on the opening balance, the
// year's tax rate is resolved from the schedule, income return is taxed,
// growth accrues, the scheduled drawdown is taken, and the closing balance
// carries into the next year's opening balance.
//
// Project is pure: identical inputs produce identical rows, and an empty year
// list produces an empty projection rather than an error.
func Project(in ProjectionInput) []domain.ProjectionRow {
	rows := make([]domain.ProjectionRow, 0, len(in.Years))
	balance := in.StartCapital

	for i, year := range in.Years {
		fees := balance.Mul(in.FeeRate)

		yearTaxRate := in.Tax.RateForYear(i)
		incomeAmt := balance.Mul(in.IncomeReturn)
		taxAmt := incomeAmt.Mul(yearTaxRate)
		incomeNet := incomeAmt.Sub(taxAmt)
		growthAmt := balance.Mul(in.GrowthReturn)

		var drawdown decimal.Decimal
		if i < len(in.Drawdowns) {
			drawdown = in.Drawdowns[i]
		}

		closing := balance.Add(growthAmt).Add(incomeNet).Sub(drawdown)
		if in.SubtractFees {
			closing = closing.Sub(fees)
		}

		row := domain.ProjectionRow{
			Year:           year,
			OpeningBalance: balance,
			IncomeReturn:   incomeAmt,
			Tax:            taxAmt,
			IncomeNet:      incomeNet,
			Growth:         growthAmt,
			Fees:           fees,
			Drawdown:       drawdown,
			ClosingBalance: closing,
		}
		if in.P1Age != nil {
			age := *in.P1Age + i
			row.P1Age = &age
		}
		if in.P2Age != nil {
			age := *in.P2Age + i
			row.P2Age = &age
		}
		rows = append(rows, row)

		balance = closing
	}

	return rows
}

// yearSpan returns n consecutive calendar years starting at startYear.
func yearSpan(startYear, n int) []int {
	if n <= 0 {
		return nil
	}
	years := make([]int, n)
	for i := range years {
		years[i] = startYear + i
	}
	return years
}

// escalate compounds base by (1+rate)^periods.
func escalate(base, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return base
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return base.Mul(factor)
}
