package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/capital-planner/internal/domain"
	"github.com/lifeplan/capital-planner/pkg/dateutil"
)

// PlanEngine drives a whole plan through the schedule builders and solver and
// aggregates the per-item capital requirements into a grand total.
type PlanEngine struct {
	Debug  bool
	Logger Logger
}

// NewPlanEngine creates a plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// planContext carries the per-run derived ages alongside the plan document.
type planContext struct {
	plan         *domain.Plan
	p1CurrentAge int
	p2CurrentAge int
}

// ProcessPlan computes every item's required capital and the grand total.
// Items with a non-positive duration or magnitude are skipped. The only error
// conditions are unparseable birth dates; the computation itself degrades to
// empty results rather than failing.
func (pe *PlanEngine) ProcessPlan(plan *domain.Plan) (*domain.PlanResult, error) {
	p1BirthYear, err := dateutil.BirthYear(plan.Profile.P1DOB)
	if err != nil {
		return nil, fmt.Errorf("profile p1_dob: %w", err)
	}
	p2BirthYear := p1BirthYear
	if plan.Profile.P2DOB != "" {
		p2BirthYear, err = dateutil.BirthYear(plan.Profile.P2DOB)
		if err != nil {
			return nil, fmt.Errorf("profile p2_dob: %w", err)
		}
	}

	ctx := &planContext{
		plan:         plan,
		p1CurrentAge: dateutil.AgeAtYear(p1BirthYear, PlanBaseYear),
		p2CurrentAge: dateutil.AgeAtYear(p2BirthYear, PlanBaseYear),
	}

	result := &domain.PlanResult{
		CurrentAgeP1: ctx.p1CurrentAge,
		CurrentAgeP2: ctx.p2CurrentAge,
	}
	for _, child := range plan.Profile.Children {
		birthYear, err := dateutil.BirthYear(child.DOB)
		if err != nil {
			return nil, fmt.Errorf("child %q dob: %w", child.Name, err)
		}
		result.Children = append(result.Children, domain.ChildAge{
			Name:       child.Name,
			BirthYear:  birthYear,
			CurrentAge: dateutil.AgeAtYear(birthYear, PlanBaseYear),
		})
	}

	for i := range plan.Incomes {
		if res, ok := pe.processIncome(ctx, &plan.Incomes[i]); ok {
			result.Items = append(result.Items, res)
		}
	}
	for i := range plan.Vehicles {
		if res, ok := pe.processVehicle(ctx, &plan.Vehicles[i]); ok {
			result.Items = append(result.Items, res)
		}
	}
	for i := range plan.Assets {
		if res, ok := pe.processAsset(ctx, &plan.Assets[i]); ok {
			result.Items = append(result.Items, res)
		}
	}
	for i := range plan.Travel {
		if res, ok := pe.processTravel(ctx, &plan.Travel[i]); ok {
			result.Items = append(result.Items, res)
		}
	}
	if plan.Medical != nil {
		if res, ok := pe.processMedical(ctx, plan.Medical); ok {
			result.Items = append(result.Items, res)
		}
	}

	total := decimal.Zero
	for _, item := range result.Items {
		total = total.Add(item.CapitalRequired)
	}
	result.TotalCapital = total

	if pe.Debug {
		pe.Logger.Debugf("plan processed: %d items, total capital $%s",
			len(result.Items), total.StringFixed(0))
	}

	return result, nil
}

// fundAge resolves the age accumulation starts at: the universal funding age
// when set, else the item's own, else the current age. Never earlier than the
// current age.
func (c *planContext) fundAge(itemFundingStart *int) int {
	age := c.p1CurrentAge
	if c.plan.UniversalFundAge != nil {
		age = *c.plan.UniversalFundAge
	} else if itemFundingStart != nil {
		age = *itemFundingStart
	}
	if age < c.p1CurrentAge {
		age = c.p1CurrentAge
	}
	return age
}

func (c *planContext) fundYear(fundAge int) int {
	return dateutil.YearAtAge(c.p1CurrentAge, PlanBaseYear, fundAge)
}

func (c *planContext) p2AgeAt(fundAge int) int {
	return c.p2CurrentAge + (fundAge - c.p1CurrentAge)
}

// taxSchedule builds the item's tax schedule. Without a tax-free age the flat
// resolved rate applies; with one, a per-year vector zeroes the rate for every
// year the client's age is at or beyond the threshold.
func (c *planContext) taxSchedule(rate decimal.Decimal, startAge, totalYears int) domain.TaxSchedule {
	threshold := c.plan.Assumptions.TaxFreeAge
	if threshold == nil {
		return domain.FlatTax(rate)
	}
	rates := make([]decimal.Decimal, 0, totalYears)
	for yr := 0; yr < totalYears; yr++ {
		if startAge+yr >= *threshold {
			rates = append(rates, decimal.Zero)
		} else {
			rates = append(rates, rate)
		}
	}
	return domain.PerYearTax(rates)
}

// inflateToAge escalates a today's-money amount to the item's start age at
// the global inflation rate. Distinct from the builders' own active-phase
// escalation, which it composes with.
func (c *planContext) inflateToAge(amount decimal.Decimal, startAge int) decimal.Decimal {
	return escalate(amount, c.plan.Assumptions.Inflation, startAge-c.p1CurrentAge)
}

// presentValue discounts capital at the funding age back to today by the
// item's growth rate.
func (c *planContext) presentValue(capital, growthRate decimal.Decimal, fundAge int) decimal.Decimal {
	yearsBack := fundAge - c.p1CurrentAge
	if yearsBack <= 0 {
		return capital
	}
	factor := decimal.NewFromInt(1).Add(growthRate).Pow(decimal.NewFromInt(int64(yearsBack)))
	return capital.Div(factor)
}

// padRows prepends zero-valued rows for every year between the current age
// and the funding age, so all items share a common timeline origin.
func (c *planContext) padRows(rows []domain.ProjectionRow, fundAge int) []domain.ProjectionRow {
	n := fundAge - c.p1CurrentAge
	if n <= 0 {
		return rows
	}
	prefix := make([]domain.ProjectionRow, n)
	for i := 0; i < n; i++ {
		p1 := c.p1CurrentAge + i
		p2 := c.p2CurrentAge + i
		prefix[i] = domain.ProjectionRow{
			Year:  PlanBaseYear + i,
			P1Age: &p1,
			P2Age: &p2,
		}
	}
	return append(prefix, rows...)
}

// padDetails keeps the asset breakdown columns aligned with padded rows.
func (c *planContext) padDetails(details []domain.AssetYearDetail, fundAge int) []domain.AssetYearDetail {
	n := fundAge - c.p1CurrentAge
	if n <= 0 {
		return details
	}
	return append(make([]domain.AssetYearDetail, n), details...)
}

// deferralYears returns the accumulation years between funding age and the
// item's start age, never negative.
func deferralYears(startAge, fundAge int) int {
	if startAge <= fundAge {
		return 0
	}
	return startAge - fundAge
}

func dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}

func (pe *PlanEngine) processIncome(c *planContext, item *domain.PlanItem) (domain.ItemResult, bool) {
	duration := item.End - item.Start
	if duration <= 0 || !item.Income.IsPositive() {
		return domain.ItemResult{}, false
	}

	asm := &c.plan.Assumptions
	rates, portfolio := ResolveItemRates(item, asm, duration)

	fundAge := c.fundAge(item.FundingStart)
	inflatedIncome := c.inflateToAge(item.Income, item.Start)
	deferYears := deferralYears(item.Start, fundAge)
	totalYears := deferYears + duration

	p1 := fundAge
	p2 := c.p2AgeAt(fundAge)
	capital, rows := BuildIncomePortfolio(IncomeScheduleInput{
		StartYear:       c.fundYear(fundAge),
		DurationYears:   duration,
		InitialDrawdown: inflatedIncome,
		Inflation:       asm.Inflation,
		IncomeReturn:    rates.IncomeReturn,
		GrowthReturn:    rates.GrowthReturn,
		Tax:             c.taxSchedule(rates.TaxRate, fundAge, totalYears),
		FeeRate:         rates.FeeRate,
		DeferYears:      deferYears,
		P1Age:           &p1,
		P2Age:           &p2,
	})

	details := fmt.Sprintf("%s/yr (Start Age %d). Fund Age %d", dollars(item.Income), item.Start, fundAge)
	if item.Start > c.p1CurrentAge {
		details = fmt.Sprintf("%s/yr today -> %s/yr inflated. Start Age %d. Fund Age %d",
			dollars(item.Income), dollars(inflatedIncome), item.Start, fundAge)
	}

	pv := c.presentValue(capital, rates.GrowthReturn, fundAge)
	if pe.Debug {
		pe.Logger.Debugf("income %q: capital at age %d $%s, PV $%s",
			item.Name, fundAge, capital.StringFixed(0), pv.StringFixed(0))
	}

	return domain.ItemResult{
		Title:            "Income Stream: " + item.Name,
		Category:         "income",
		Details:          details,
		CapitalRequired:  pv,
		CapitalAtFundAge: capital,
		FundAge:          fundAge,
		Rows:             c.padRows(rows, fundAge),
		PortfolioUsed:    portfolio,
		Returns:          rates,
	}, true
}

func (pe *PlanEngine) processVehicle(c *planContext, item *domain.PlanItem) (domain.ItemResult, bool) {
	if !item.Cost.IsPositive() {
		return domain.ItemResult{}, false
	}
	duration := VehicleHorizonYears

	asm := &c.plan.Assumptions
	rates, portfolio := ResolveItemRates(item, asm, duration)

	fundAge := c.fundAge(item.FundingStart)
	inflatedCost := c.inflateToAge(item.Cost, item.Start)

	// Undeclared trade-ins assume 30% of the inflated purchase price is
	// recovered at each replacement.
	tradeIn := item.TradeIn
	if !tradeIn.IsPositive() {
		tradeIn = inflatedCost.Mul(decimal.NewFromFloat(0.3))
	}

	effInflation := asm.Inflation
	if !item.Inflates() {
		effInflation = decimal.Zero
	}

	deferYears := deferralYears(item.Start, fundAge)
	totalYears := deferYears + duration

	p1 := fundAge
	p2 := c.p2AgeAt(fundAge)
	capital, rows, breakdown := BuildAssetPortfolio(AssetScheduleInput{
		StartYear:         c.fundYear(fundAge),
		DurationYears:     duration,
		PurchaseValue:     inflatedCost,
		ReplacementCycle:  item.Cycle,
		AnnualHoldingCost: item.Holding,
		TradeInValue:      tradeIn,
		Inflation:         effInflation,
		IncomeReturn:      rates.IncomeReturn,
		GrowthReturn:      rates.GrowthReturn,
		Tax:               c.taxSchedule(rates.TaxRate, fundAge, totalYears),
		FeeRate:           rates.FeeRate,
		DeferYears:        deferYears,
		P1Age:             &p1,
		P2Age:             &p2,
	})

	costDetail := dollars(item.Cost)
	if item.Start > c.p1CurrentAge {
		costDetail = fmt.Sprintf("%s today -> %s inflated", dollars(item.Cost), dollars(inflatedCost))
	}
	details := fmt.Sprintf("Cost %s/%dy. Fund Age %d. Inflation: %t",
		costDetail, item.Cycle, fundAge, item.Inflates())

	pv := c.presentValue(capital, rates.GrowthReturn, fundAge)
	if pe.Debug {
		pe.Logger.Debugf("vehicle %q: capital at age %d $%s, PV $%s",
			item.Name, fundAge, capital.StringFixed(0), pv.StringFixed(0))
	}

	return domain.ItemResult{
		Title:            "Vehicle: " + item.Name,
		Category:         "vehicle",
		Details:          details,
		CapitalRequired:  pv,
		CapitalAtFundAge: capital,
		FundAge:          fundAge,
		Rows:             c.padRows(rows, fundAge),
		AssetDetail:      c.padDetails(breakdown, fundAge),
		PortfolioUsed:    portfolio,
		Returns:          rates,
	}, true
}

func (pe *PlanEngine) processAsset(c *planContext, item *domain.PlanItem) (domain.ItemResult, bool) {
	duration := item.End - item.Start
	if duration <= 0 || !item.Cost.IsPositive() {
		return domain.ItemResult{}, false
	}

	asm := &c.plan.Assumptions
	rates, portfolio := ResolveItemRates(item, asm, duration)

	fundAge := c.fundAge(item.FundingStart)
	inflatedCost := c.inflateToAge(item.Cost, item.Start)

	effInflation := asm.Inflation
	if !item.Inflates() {
		effInflation = decimal.Zero
	}

	deferYears := deferralYears(item.Start, fundAge)
	totalYears := deferYears + duration

	p1 := fundAge
	p2 := c.p2AgeAt(fundAge)
	capital, rows, breakdown := BuildAssetPortfolio(AssetScheduleInput{
		StartYear:         c.fundYear(fundAge),
		DurationYears:     duration,
		PurchaseValue:     inflatedCost,
		ReplacementCycle:  0,
		AnnualHoldingCost: item.Holding,
		TradeInValue:      item.Resale,
		Inflation:         effInflation,
		IncomeReturn:      rates.IncomeReturn,
		GrowthReturn:      rates.GrowthReturn,
		Tax:               c.taxSchedule(rates.TaxRate, fundAge, totalYears),
		FeeRate:           rates.FeeRate,
		DeferYears:        deferYears,
		SellAtEnd:         true,
		P1Age:             &p1,
		P2Age:             &p2,
	})

	costDetail := dollars(item.Cost)
	if item.Start > c.p1CurrentAge {
		costDetail = fmt.Sprintf("%s today -> %s inflated", dollars(item.Cost), dollars(inflatedCost))
	}
	details := fmt.Sprintf("Buy %s @ Age %d. Fund Age %d. Inf: %t",
		costDetail, item.Start, fundAge, item.Inflates())

	pv := c.presentValue(capital, rates.GrowthReturn, fundAge)
	if pe.Debug {
		pe.Logger.Debugf("asset %q: capital at age %d $%s, PV $%s",
			item.Name, fundAge, capital.StringFixed(0), pv.StringFixed(0))
	}

	return domain.ItemResult{
		Title:            "Asset: " + item.Name,
		Category:         "asset",
		Details:          details,
		CapitalRequired:  pv,
		CapitalAtFundAge: capital,
		FundAge:          fundAge,
		Rows:             c.padRows(rows, fundAge),
		AssetDetail:      c.padDetails(breakdown, fundAge),
		PortfolioUsed:    portfolio,
		Returns:          rates,
	}, true
}

func (pe *PlanEngine) processTravel(c *planContext, item *domain.PlanItem) (domain.ItemResult, bool) {
	duration := item.End - item.Start
	if duration <= 0 || !item.Cost.IsPositive() {
		return domain.ItemResult{}, false
	}

	asm := &c.plan.Assumptions
	rates, portfolio := ResolveItemRates(item, asm, duration)

	fundAge := c.fundAge(item.FundingStart)
	inflatedCost := c.inflateToAge(item.Cost, item.Start)
	deferYears := deferralYears(item.Start, fundAge)
	totalYears := deferYears + duration

	p1 := fundAge
	p2 := c.p2AgeAt(fundAge)
	capital, rows := BuildHolidayPortfolio(HolidayScheduleInput{
		StartYear:          c.fundYear(fundAge),
		DurationYears:      duration,
		TripCost:           inflatedCost,
		TripFrequencyYears: 1,
		Inflation:          asm.Inflation,
		IncomeReturn:       rates.IncomeReturn,
		GrowthReturn:       rates.GrowthReturn,
		Tax:                c.taxSchedule(rates.TaxRate, fundAge, totalYears),
		FeeRate:            rates.FeeRate,
		DeferYears:         deferYears,
		P1Age:              &p1,
		P2Age:              &p2,
	})

	costDetail := dollars(item.Cost) + "/yr"
	if item.Start > c.p1CurrentAge {
		costDetail = fmt.Sprintf("%s/yr today -> %s/yr inflated", dollars(item.Cost), dollars(inflatedCost))
	}
	details := fmt.Sprintf("%s from Age %d. Fund Age %d.", costDetail, item.Start, fundAge)

	pv := c.presentValue(capital, rates.GrowthReturn, fundAge)
	if pe.Debug {
		pe.Logger.Debugf("travel %q: capital at age %d $%s, PV $%s",
			item.Name, fundAge, capital.StringFixed(0), pv.StringFixed(0))
	}

	return domain.ItemResult{
		Title:            "Travel: " + item.Name,
		Category:         "travel",
		Details:          details,
		CapitalRequired:  pv,
		CapitalAtFundAge: capital,
		FundAge:          fundAge,
		Rows:             c.padRows(rows, fundAge),
		PortfolioUsed:    portfolio,
		Returns:          rates,
	}, true
}

func (pe *PlanEngine) processMedical(c *planContext, item *domain.PlanItem) (domain.ItemResult, bool) {
	if !item.Cost.IsPositive() {
		return domain.ItemResult{}, false
	}

	startAge := item.Start
	if startAge == 0 {
		startAge = DefaultMedicalStartAge
	}
	endAge := item.End
	if endAge == 0 {
		endAge = DefaultMedicalEndAge
	}
	duration := endAge - startAge
	if duration <= 0 {
		return domain.ItemResult{}, false
	}

	asm := &c.plan.Assumptions
	rates, portfolio := ResolveItemRates(item, asm, duration)

	fundAge := c.fundAge(item.FundingStart)
	inflatedCost := c.inflateToAge(item.Cost, startAge)
	deferYears := deferralYears(startAge, fundAge)
	totalYears := deferYears + duration

	p1 := fundAge
	p2 := c.p2AgeAt(fundAge)
	capital, rows := BuildHolidayPortfolio(HolidayScheduleInput{
		StartYear:          c.fundYear(fundAge),
		DurationYears:      duration,
		TripCost:           inflatedCost,
		TripFrequencyYears: 1,
		Inflation:          asm.Inflation,
		IncomeReturn:       rates.IncomeReturn,
		GrowthReturn:       rates.GrowthReturn,
		Tax:                c.taxSchedule(rates.TaxRate, fundAge, totalYears),
		FeeRate:            rates.FeeRate,
		DeferYears:         deferYears,
		P1Age:              &p1,
		P2Age:              &p2,
	})

	costDetail := dollars(item.Cost) + "/yr"
	if startAge > c.p1CurrentAge {
		costDetail = fmt.Sprintf("%s/yr today -> %s/yr inflated", dollars(item.Cost), dollars(inflatedCost))
	}
	details := fmt.Sprintf("%s from Age %d. Fund Age %d.", costDetail, startAge, fundAge)

	pv := c.presentValue(capital, rates.GrowthReturn, fundAge)
	if pe.Debug {
		pe.Logger.Debugf("medical buffer: capital at age %d $%s, PV $%s",
			fundAge, capital.StringFixed(0), pv.StringFixed(0))
	}

	return domain.ItemResult{
		Title:            "Medical Buffer",
		Category:         "medical",
		Details:          details,
		CapitalRequired:  pv,
		CapitalAtFundAge: capital,
		FundAge:          fundAge,
		Rows:             c.padRows(rows, fundAge),
		PortfolioUsed:    portfolio,
		Returns:          rates,
	}, true
}
