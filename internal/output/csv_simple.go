package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifeplan/capital-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per item).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Title", "Category", "Portfolio", "FundAge", "CapitalAtFundAge", "PresentValueCapital", "IncomeReturn", "GrowthReturn", "TaxRate", "FeeRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range result.Items {
		row := []string{
			item.Title,
			item.Category,
			item.PortfolioUsed,
			strconv.Itoa(item.FundAge),
			item.CapitalAtFundAge.StringFixed(2),
			item.CapitalRequired.StringFixed(2),
			item.Returns.IncomeReturn.StringFixed(4),
			item.Returns.GrowthReturn.StringFixed(4),
			item.Returns.TaxRate.StringFixed(4),
			item.Returns.FeeRate.StringFixed(4),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	total := []string{"TOTAL", "", "", "", "", result.TotalCapital.StringFixed(2), "", "", "", ""}
	if err := w.Write(total); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
