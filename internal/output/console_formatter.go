package output

import (
	"bytes"
	"fmt"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// ConsoleFormatter renders the plan result as readable text: one summary line
// per item, the grand total, and the year-by-year tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "CAPITAL REQUIREMENT SUMMARY")
	fmt.Fprintln(&buf, "===========================")
	fmt.Fprintf(&buf, "Current Ages: %d / %d\n", result.CurrentAgeP1, result.CurrentAgeP2)
	for _, child := range result.Children {
		fmt.Fprintf(&buf, "Child %s: age %d\n", child.Name, child.CurrentAge)
	}
	fmt.Fprintln(&buf)

	for _, item := range result.Items {
		fmt.Fprintf(&buf, "%s [%s]\n", item.Title, item.PortfolioUsed)
		fmt.Fprintf(&buf, "  %s\n", item.Details)
		fmt.Fprintf(&buf, "  Capital at Fund Age %d: %s   Present Value: %s\n",
			item.FundAge, FormatCurrency(item.CapitalAtFundAge), FormatCurrency(item.CapitalRequired))
		fmt.Fprintf(&buf, "  Returns: income %s, growth %s, tax %s, fees %s\n",
			FormatPercentage(item.Returns.IncomeReturn),
			FormatPercentage(item.Returns.GrowthReturn),
			FormatPercentage(item.Returns.TaxRate),
			FormatPercentage(item.Returns.FeeRate))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "TOTAL CAPITAL REQUIRED TODAY: %s\n", FormatCurrency(result.TotalCapital))
	fmt.Fprintln(&buf)

	for _, item := range result.Items {
		writeItemTable(&buf, &item)
	}

	return buf.Bytes(), nil
}

func writeItemTable(buf *bytes.Buffer, item *domain.ItemResult) {
	fmt.Fprintf(buf, "%s\n", item.Title)

	hasAges := len(item.Rows) > 0 && item.Rows[0].P1Age != nil
	hasDetail := len(item.AssetDetail) == len(item.Rows) && len(item.AssetDetail) > 0

	header := "Year"
	if hasAges {
		header += "  P1  P2"
	}
	header += "      Open       Inc($)      Tax      Growth       Fees"
	if hasDetail {
		header += "   Purchase   Trade-In    Holding"
	}
	header += "       Draw      Close"
	fmt.Fprintln(buf, header)

	for i, row := range item.Rows {
		line := fmt.Sprintf("%d", row.Year)
		if hasAges {
			p1, p2 := 0, 0
			if row.P1Age != nil {
				p1 = *row.P1Age
			}
			if row.P2Age != nil {
				p2 = *row.P2Age
			}
			line += fmt.Sprintf("  %2d  %2d", p1, p2)
		}
		line += fmt.Sprintf("  %10s %10s %10s %10s %10s",
			FormatCurrency(row.OpeningBalance),
			FormatCurrency(row.IncomeReturn),
			FormatCurrency(row.Tax),
			FormatCurrency(row.Growth),
			FormatCurrency(row.Fees))
		if hasDetail {
			d := item.AssetDetail[i]
			line += fmt.Sprintf(" %10s %10s %10s",
				FormatCurrency(d.PurchaseCost),
				FormatCurrency(d.TradeInValue),
				FormatCurrency(d.HoldingCost))
		}
		line += fmt.Sprintf(" %10s %10s",
			FormatCurrency(row.Drawdown),
			FormatCurrency(row.ClosingBalance))
		fmt.Fprintln(buf, line)
	}
	fmt.Fprintln(buf)
}
