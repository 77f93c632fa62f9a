package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// Portfolio preset names. An unknown name leaves the global return
// assumptions in place.
const (
	PortfolioConservative = "conservative"
	PortfolioBalanced     = "balanced"
	PortfolioGrowth       = "growth"
)

type presetReturns struct {
	incomeReturn decimal.Decimal
	growthReturn decimal.Decimal
}

var portfolioPresets = map[string]presetReturns{
	PortfolioConservative: {decimal.NewFromFloat(0.045), decimal.NewFromFloat(0.005)},
	PortfolioBalanced:     {decimal.NewFromFloat(0.035), decimal.NewFromFloat(0.045)},
	PortfolioGrowth:       {decimal.NewFromFloat(0.025), decimal.NewFromFloat(0.065)},
}

// autoPortfolio picks a preset from the item's drawdown duration: long
// horizons ride growth, short horizons stay conservative.
func autoPortfolio(durationYears int) string {
	switch {
	case durationYears > 14:
		return PortfolioGrowth
	case durationYears >= 6:
		return PortfolioBalanced
	default:
		return PortfolioConservative
	}
}

// ResolveItemRates resolves the rate set for one item. Priority, high to low:
// explicit per-item override, the item's named preset, the auto preset chosen
// from duration, the global assumptions. Tax and fee rates come from the
// global assumptions unless overridden per item; presets carry returns only.
// Returns the resolved rates and the preset name used.
func ResolveItemRates(item *domain.PlanItem, asm *domain.Assumptions, durationYears int) (domain.RateSet, string) {
	rates := domain.RateSet{
		IncomeReturn: asm.IncomeReturn,
		GrowthReturn: asm.GrowthReturn,
		TaxRate:      asm.TaxRate,
		FeeRate:      asm.FeeLoad,
	}

	portfolio := item.Portfolio
	if portfolio == "" {
		portfolio = autoPortfolio(durationYears)
	}
	if preset, ok := portfolioPresets[portfolio]; ok {
		rates.IncomeReturn = preset.incomeReturn
		rates.GrowthReturn = preset.growthReturn
	}

	if item.IncomeReturn != nil {
		rates.IncomeReturn = *item.IncomeReturn
	}
	if item.GrowthReturn != nil {
		rates.GrowthReturn = *item.GrowthReturn
	}
	if item.TaxRate != nil {
		rates.TaxRate = *item.TaxRate
	}
	if item.FeeLoad != nil {
		rates.FeeRate = *item.FeeLoad
	}

	return rates, portfolio
}
