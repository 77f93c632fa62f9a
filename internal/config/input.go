package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifeplan/capital-planner/internal/domain"
	"github.com/lifeplan/capital-planner/pkg/dateutil"
)

// InputParser handles parsing of plan documents. The calculation core never
// rejects input; everything malformed is caught here first.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates a plan document from raw YAML bytes
func (ip *InputParser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan document
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&plan.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	for i := range plan.Incomes {
		if err := ip.validateIncome(&plan.Incomes[i]); err != nil {
			return fmt.Errorf("income %d (%s): %w", i, plan.Incomes[i].Name, err)
		}
	}
	for i := range plan.Vehicles {
		if err := ip.validateCostItem(&plan.Vehicles[i], false); err != nil {
			return fmt.Errorf("vehicle %d (%s): %w", i, plan.Vehicles[i].Name, err)
		}
	}
	for i := range plan.Assets {
		if err := ip.validateCostItem(&plan.Assets[i], true); err != nil {
			return fmt.Errorf("asset %d (%s): %w", i, plan.Assets[i].Name, err)
		}
	}
	for i := range plan.Travel {
		if err := ip.validateCostItem(&plan.Travel[i], true); err != nil {
			return fmt.Errorf("travel %d (%s): %w", i, plan.Travel[i].Name, err)
		}
	}
	if plan.Medical != nil {
		if err := ip.validateCostItem(plan.Medical, false); err != nil {
			return fmt.Errorf("medical: %w", err)
		}
	}

	if plan.UniversalFundAge != nil && (*plan.UniversalFundAge < 0 || *plan.UniversalFundAge > 120) {
		return fmt.Errorf("universal fund age must be between 0 and 120")
	}

	return nil
}

// validateProfile validates identities and birth dates
func (ip *InputParser) validateProfile(profile *domain.Profile) error {
	if profile.P1DOB == "" {
		return fmt.Errorf("p1_dob is required")
	}
	if _, err := dateutil.BirthYear(profile.P1DOB); err != nil {
		return err
	}
	if profile.P2DOB != "" {
		if _, err := dateutil.BirthYear(profile.P2DOB); err != nil {
			return err
		}
	}
	for _, child := range profile.Children {
		if _, err := dateutil.BirthYear(child.DOB); err != nil {
			return fmt.Errorf("child %s: %w", child.Name, err)
		}
	}
	return nil
}

// validateAssumptions validates the global rate assumptions
func (ip *InputParser) validateAssumptions(asm *domain.Assumptions) error {
	if asm.Inflation.LessThan(decimal.NewFromFloat(-0.10)) || asm.Inflation.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation must be between -10%% and 20%%, got %s%%",
			asm.Inflation.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	if asm.IncomeReturn.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("income return cannot be less than -100%%")
	}
	if asm.GrowthReturn.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("growth return cannot be less than -100%%")
	}
	if asm.TaxRate.IsNegative() || asm.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate must be between 0 and 1")
	}
	if asm.FeeLoad.IsNegative() {
		return fmt.Errorf("fee load cannot be negative")
	}
	if asm.TaxFreeAge != nil && (*asm.TaxFreeAge < 0 || *asm.TaxFreeAge > 120) {
		return fmt.Errorf("tax free age must be between 0 and 120")
	}
	return nil
}

// validateIncome validates an income stage
func (ip *InputParser) validateIncome(item *domain.PlanItem) error {
	if item.Income.IsNegative() {
		return fmt.Errorf("income cannot be negative")
	}
	if item.End < item.Start {
		return fmt.Errorf("end age %d precedes start age %d", item.End, item.Start)
	}
	return ip.validateCommon(item)
}

// validateCostItem validates a cost-driven item. Vehicles and the medical
// buffer have implied windows, so their age ordering is only checked when
// requireWindow is set.
func (ip *InputParser) validateCostItem(item *domain.PlanItem, requireWindow bool) error {
	if item.Cost.IsNegative() {
		return fmt.Errorf("cost cannot be negative")
	}
	if item.Holding.IsNegative() {
		return fmt.Errorf("holding cost cannot be negative")
	}
	if item.Resale.IsNegative() {
		return fmt.Errorf("resale value cannot be negative")
	}
	if item.TradeIn.IsNegative() {
		return fmt.Errorf("trade-in value cannot be negative")
	}
	if item.Cycle < 0 {
		return fmt.Errorf("replacement cycle cannot be negative")
	}
	if requireWindow && item.End < item.Start {
		return fmt.Errorf("end age %d precedes start age %d", item.End, item.Start)
	}
	return ip.validateCommon(item)
}

func (ip *InputParser) validateCommon(item *domain.PlanItem) error {
	if item.Start < 0 || item.End < 0 {
		return fmt.Errorf("ages cannot be negative")
	}
	if item.FundingStart != nil && *item.FundingStart < 0 {
		return fmt.Errorf("funding start age cannot be negative")
	}
	if item.Portfolio != "" {
		switch item.Portfolio {
		case "conservative", "balanced", "growth":
		default:
			return fmt.Errorf("portfolio must be 'conservative', 'balanced' or 'growth'")
		}
	}
	for name, rate := range map[string]*decimal.Decimal{
		"income_return": item.IncomeReturn,
		"growth_return": item.GrowthReturn,
		"fee_load":      item.FeeLoad,
	} {
		if rate != nil && rate.LessThan(decimal.NewFromFloat(-1.0)) {
			return fmt.Errorf("%s override cannot be less than -100%%", name)
		}
	}
	if item.TaxRate != nil && (item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("tax_rate override must be between 0 and 1")
	}
	return nil
}

// CreateExamplePlan creates an example plan document
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	taxFreeAge := 65
	retireFunding := 55

	return &domain.Plan{
		Profile: domain.Profile{
			P1Name: "Alex",
			P1DOB:  "1971-04-12",
			P2Name: "Sam",
			P2DOB:  "1973-09-03",
			Children: []domain.Child{
				{Name: "Emily", DOB: "2010-05-15"},
			},
		},
		Assumptions: domain.Assumptions{
			IncomeReturn: decimal.NewFromFloat(0.035),
			GrowthReturn: decimal.NewFromFloat(0.045),
			TaxRate:      decimal.NewFromFloat(0.15),
			Inflation:    decimal.NewFromFloat(0.03),
			FeeLoad:      decimal.NewFromFloat(0.011),
			TaxFreeAge:   &taxFreeAge,
		},
		Incomes: []domain.PlanItem{
			{
				Name:         "Active Years",
				Income:       decimal.NewFromInt(100000),
				Start:        60,
				End:          70,
				FundingStart: &retireFunding,
			},
			{
				Name:         "Slowing Down",
				Income:       decimal.NewFromInt(80000),
				Start:        70,
				End:          85,
				FundingStart: &retireFunding,
			},
		},
		Vehicles: []domain.PlanItem{
			{
				Name:    "Family SUV",
				Cost:    decimal.NewFromInt(50000),
				Start:   60,
				Cycle:   10,
				Holding: decimal.NewFromInt(3300),
				TradeIn: decimal.NewFromInt(10000),
			},
		},
		Assets: []domain.PlanItem{
			{
				Name:    "Coastal Boat",
				Cost:    decimal.NewFromInt(120000),
				Start:   62,
				End:     75,
				Holding: decimal.NewFromInt(8000),
				Resale:  decimal.NewFromInt(60000),
			},
		},
		Travel: []domain.PlanItem{
			{
				Name:  "Annual Overseas Trip",
				Cost:  decimal.NewFromInt(15000),
				Start: 60,
				End:   80,
			},
		},
		Medical: &domain.PlanItem{
			Name: "Medical Buffer",
			Cost: decimal.NewFromInt(10000),
		},
	}
}
