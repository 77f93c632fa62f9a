package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// yaml.v3 cannot decode scalars into decimal.Decimal directly, so the
// decimal-bearing plan types decode through plain-float aliases.

type assumptionsAlias struct {
	IncomeReturn float64 `yaml:"income_return"`
	GrowthReturn float64 `yaml:"growth_return"`
	TaxRate      float64 `yaml:"tax_rate"`
	Inflation    float64 `yaml:"inflation"`
	FeeLoad      float64 `yaml:"fee_load"`
	TaxFreeAge   *int    `yaml:"tax_free_age,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Assumptions
func (a *Assumptions) UnmarshalYAML(value *yaml.Node) error {
	var aux assumptionsAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	a.IncomeReturn = decimal.NewFromFloat(aux.IncomeReturn)
	a.GrowthReturn = decimal.NewFromFloat(aux.GrowthReturn)
	a.TaxRate = decimal.NewFromFloat(aux.TaxRate)
	a.Inflation = decimal.NewFromFloat(aux.Inflation)
	a.FeeLoad = decimal.NewFromFloat(aux.FeeLoad)
	a.TaxFreeAge = aux.TaxFreeAge
	return nil
}

// MarshalYAML implements custom YAML marshaling for Assumptions
func (a Assumptions) MarshalYAML() (interface{}, error) {
	return assumptionsAlias{
		IncomeReturn: a.IncomeReturn.InexactFloat64(),
		GrowthReturn: a.GrowthReturn.InexactFloat64(),
		TaxRate:      a.TaxRate.InexactFloat64(),
		Inflation:    a.Inflation.InexactFloat64(),
		FeeLoad:      a.FeeLoad.InexactFloat64(),
		TaxFreeAge:   a.TaxFreeAge,
	}, nil
}

type planItemAlias struct {
	Name           string   `yaml:"name"`
	Income         float64  `yaml:"income,omitempty"`
	Start          int      `yaml:"start,omitempty"`
	End            int      `yaml:"end,omitempty"`
	Cost           float64  `yaml:"cost,omitempty"`
	Cycle          int      `yaml:"cycle,omitempty"`
	Holding        float64  `yaml:"holding,omitempty"`
	Resale         float64  `yaml:"resale,omitempty"`
	TradeIn        float64  `yaml:"tradein,omitempty"`
	FundingStart   *int     `yaml:"funding_start,omitempty"`
	ApplyInflation *bool    `yaml:"apply_inflation,omitempty"`
	Portfolio      string   `yaml:"portfolio,omitempty"`
	IncomeReturn   *float64 `yaml:"income_return,omitempty"`
	GrowthReturn   *float64 `yaml:"growth_return,omitempty"`
	TaxRate        *float64 `yaml:"tax_rate,omitempty"`
	FeeLoad        *float64 `yaml:"fee_load,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for PlanItem
func (it *PlanItem) UnmarshalYAML(value *yaml.Node) error {
	var aux planItemAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	it.Name = aux.Name
	it.Income = decimal.NewFromFloat(aux.Income)
	it.Start = aux.Start
	it.End = aux.End
	it.Cost = decimal.NewFromFloat(aux.Cost)
	it.Cycle = aux.Cycle
	it.Holding = decimal.NewFromFloat(aux.Holding)
	it.Resale = decimal.NewFromFloat(aux.Resale)
	it.TradeIn = decimal.NewFromFloat(aux.TradeIn)
	it.FundingStart = aux.FundingStart
	it.ApplyInflation = aux.ApplyInflation
	it.Portfolio = aux.Portfolio
	it.IncomeReturn = optionalDecimal(aux.IncomeReturn)
	it.GrowthReturn = optionalDecimal(aux.GrowthReturn)
	it.TaxRate = optionalDecimal(aux.TaxRate)
	it.FeeLoad = optionalDecimal(aux.FeeLoad)
	return nil
}

// MarshalYAML implements custom YAML marshaling for PlanItem
func (it PlanItem) MarshalYAML() (interface{}, error) {
	return planItemAlias{
		Name:           it.Name,
		Income:         it.Income.InexactFloat64(),
		Start:          it.Start,
		End:            it.End,
		Cost:           it.Cost.InexactFloat64(),
		Cycle:          it.Cycle,
		Holding:        it.Holding.InexactFloat64(),
		Resale:         it.Resale.InexactFloat64(),
		TradeIn:        it.TradeIn.InexactFloat64(),
		FundingStart:   it.FundingStart,
		ApplyInflation: it.ApplyInflation,
		Portfolio:      it.Portfolio,
		IncomeReturn:   optionalFloat(it.IncomeReturn),
		GrowthReturn:   optionalFloat(it.GrowthReturn),
		TaxRate:        optionalFloat(it.TaxRate),
		FeeLoad:        optionalFloat(it.FeeLoad),
	}, nil
}

func optionalDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func optionalFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
