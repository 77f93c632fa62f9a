package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAssumptionsUnmarshalYAML(t *testing.T) {
	doc := `
income_return: 0.045
growth_return: 0.06
tax_rate: 0.15
inflation: 0.03
fee_load: 0.011
tax_free_age: 65
`
	var asm Assumptions
	require.NoError(t, yaml.Unmarshal([]byte(doc), &asm))

	assert.True(t, asm.IncomeReturn.Equal(decimal.NewFromFloat(0.045)))
	assert.True(t, asm.GrowthReturn.Equal(decimal.NewFromFloat(0.06)))
	assert.True(t, asm.TaxRate.Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, asm.Inflation.Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, asm.FeeLoad.Equal(decimal.NewFromFloat(0.011)))
	require.NotNil(t, asm.TaxFreeAge)
	assert.Equal(t, 65, *asm.TaxFreeAge)
}

func TestPlanItemUnmarshalYAML(t *testing.T) {
	doc := `
name: Boat
cost: 120000
start: 62
end: 75
holding: 8000
resale: 60000
funding_start: 58
portfolio: balanced
growth_return: 0.07
`
	var item PlanItem
	require.NoError(t, yaml.Unmarshal([]byte(doc), &item))

	assert.Equal(t, "Boat", item.Name)
	assert.True(t, item.Cost.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, 62, item.Start)
	assert.Equal(t, 75, item.End)
	assert.True(t, item.Holding.Equal(decimal.NewFromInt(8000)))
	assert.True(t, item.Resale.Equal(decimal.NewFromInt(60000)))
	require.NotNil(t, item.FundingStart)
	assert.Equal(t, 58, *item.FundingStart)
	assert.Equal(t, "balanced", item.Portfolio)
	require.NotNil(t, item.GrowthReturn)
	assert.True(t, item.GrowthReturn.Equal(decimal.NewFromFloat(0.07)))
	assert.Nil(t, item.IncomeReturn)
	assert.Nil(t, item.TaxRate)
	assert.Nil(t, item.FeeLoad)
}

func TestPlanItemYAMLRoundTrip(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.1)
	fundAge := 55
	item := PlanItem{
		Name:         "Trip",
		Cost:         decimal.NewFromInt(15000),
		Start:        60,
		End:          80,
		FundingStart: &fundAge,
		TaxRate:      &taxRate,
	}

	data, err := yaml.Marshal(item)
	require.NoError(t, err)

	var got PlanItem
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, item.Name, got.Name)
	assert.True(t, got.Cost.Equal(item.Cost))
	assert.Equal(t, item.Start, got.Start)
	assert.Equal(t, item.End, got.End)
	require.NotNil(t, got.FundingStart)
	assert.Equal(t, fundAge, *got.FundingStart)
	require.NotNil(t, got.TaxRate)
	assert.True(t, got.TaxRate.Equal(taxRate))
}
