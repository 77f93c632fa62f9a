package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// CSVDetailedExporter emits every projection row of every item, including the
// asset breakdown columns (blank for non-asset items).
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv-detailed" }

func (c CSVDetailedExporter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Title", "Year", "P1Age", "P2Age", "OpeningBalance", "IncomeReturn", "Tax", "IncomeNet", "Growth", "Fees", "PurchaseCost", "TradeInValue", "HoldingCost", "Drawdown", "ClosingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range result.Items {
		hasDetail := len(item.AssetDetail) == len(item.Rows)
		for i, row := range item.Rows {
			purchase, tradeIn, holding := "", "", ""
			if hasDetail {
				d := item.AssetDetail[i]
				purchase = d.PurchaseCost.StringFixed(2)
				tradeIn = d.TradeInValue.StringFixed(2)
				holding = d.HoldingCost.StringFixed(2)
			}
			record := []string{
				item.Title,
				strconv.Itoa(row.Year),
				ageString(row.P1Age),
				ageString(row.P2Age),
				row.OpeningBalance.StringFixed(2),
				row.IncomeReturn.StringFixed(2),
				row.Tax.StringFixed(2),
				row.IncomeNet.StringFixed(2),
				row.Growth.StringFixed(2),
				row.Fees.StringFixed(2),
				purchase,
				tradeIn,
				holding,
				row.Drawdown.StringFixed(2),
				row.ClosingBalance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func ageString(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}
