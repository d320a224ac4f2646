package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/renderer"
	"github.com/shopspring/decimal"
)

// CSVExporter writes the holdings, totals, recommendation and weak-holding notes
// as sections of a delimited file separated by empty records.
type CSVExporter struct {
	labels renderer.Labels
}

// NewCSVExporter creates a new CSVExporter with labels in lang
func NewCSVExporter(lang string) *CSVExporter {
	return &CSVExporter{labels: renderer.LabelsFor(lang)}
}

func (e *CSVExporter) Format() string      { return "csv" }
func (e *CSVExporter) ContentType() string { return "text/csv" }
func (e *CSVExporter) FileName() string    { return "ket_qua_rsiv.csv" }

// Export writes the analysis to w
func (e *CSVExporter) Export(w io.Writer, a *models.AnalysisResponse) error {
	l := e.labels
	r := a.Result

	records := [][]string{{l.Holding, l.Score, l.Invested}}
	for i, h := range a.Input.Holdings {
		records = append(records, []string{renderer.HoldingLabel(l, i), fixed(h.StrengthScore), fixed(h.InvestedAmount)})
	}

	records = append(records,
		[]string{},
		[]string{l.TotalInvested, fixed(r.TotalInvested)},
		[]string{l.Cash, fixed(a.Input.CashBalance)},
		[]string{},
		[]string{l.StockWeight + " (%)", fixed(r.ActualStockWeightPct), "%"},
		[]string{l.SuggestedRatio + " (%)", fixed(r.SuggestedHoldingRatio), "%"},
		[]string{l.Action, l.Actions[r.RecommendedAction], ""},
		[]string{l.Amount, fixed(r.RecommendedAmount), ""},
		[]string{},
		[]string{l.WeakNotes},
	)

	if len(r.WeakHoldings) == 0 {
		records = append(records, []string{l.NoWeakShort})
	}
	for _, weak := range r.WeakHoldings {
		records = append(records, []string{renderer.WeakLine(l, weak)})
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
