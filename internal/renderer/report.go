package renderer

import (
	"fmt"

	"github.com/epeers/rsiv/internal/models"
)

// ReportOptions holds configuration for rendering an analysis report.
type ReportOptions struct {
	Extended bool   // Add the per-holding breakdown table.
	Lang     string // LangVietnamese (default) or LangEnglish.
	Currency string // ISO 4217 code used to display amounts.
}

// Report is the view model of an analysis, with every number already formatted.
type Report struct {
	L        Labels
	Extended bool

	WeightedScore  string
	SuggestedRatio string
	TotalValue     string
	TotalInvested  string
	Cash           string
	StockWeight    string
	CashWeight     string
	Action         string
	Amount         string
	Recommendation string

	// Weak lists weak holdings as "<label> (RSIV = <score>)".
	Weak []string
	Rows []ReportRow
}

// ReportRow is one holding of the extended breakdown.
type ReportRow struct {
	Label        string
	Score        string
	Invested     string
	Weight       string
	Contribution string
	Weak         bool
}

// NewReport builds the view model of an analysis.
func NewReport(a *models.AnalysisResponse, opts ReportOptions) *Report {
	l := LabelsFor(opts.Lang)
	r := a.Result
	cur := opts.Currency

	rep := &Report{
		L:              l,
		Extended:       opts.Extended,
		WeightedScore:  formatFloat(r.WeightedScore),
		SuggestedRatio: formatFloat(r.SuggestedHoldingRatio),
		TotalValue:     FormatMoney(r.TotalPortfolioValue, cur),
		TotalInvested:  FormatMoney(r.TotalInvested, cur),
		Cash:           FormatMoney(a.Input.CashBalance, cur),
		StockWeight:    formatFloat(r.ActualStockWeightPct),
		CashWeight:     formatFloat(r.CashWeightPct),
		Action:         l.Actions[r.RecommendedAction],
		Amount:         FormatMoney(r.RecommendedAmount, cur),
	}
	rep.Recommendation = fmt.Sprintf(l.Adjust, rep.Action, rep.Amount)

	for _, w := range r.WeakHoldings {
		rep.Weak = append(rep.Weak, WeakLine(l, w))
	}

	for i, h := range a.Input.Holdings {
		var weight float64
		if i < len(r.PerHoldingWeights) {
			weight = r.PerHoldingWeights[i]
		}
		rep.Rows = append(rep.Rows, ReportRow{
			Label:        HoldingLabel(l, i),
			Score:        formatFloat(h.StrengthScore),
			Invested:     FormatMoney(h.InvestedAmount, cur),
			Weight:       formatFloat(weight),
			Contribution: formatFloat(h.StrengthScore * weight / 100),
			Weak:         h.StrengthScore < models.WeakScoreThreshold,
		})
	}
	return rep
}

// HoldingLabel returns the localized display label of the holding at 0-based index i.
func HoldingLabel(l Labels, i int) string {
	return fmt.Sprintf("%s %d", l.Holding, i+1)
}

// WeakLine describes a weak holding, e.g. "Holding 2 (RSIV = 30.00)".
func WeakLine(l Labels, w models.WeakHolding) string {
	return fmt.Sprintf("%s (RSIV = %.2f)", HoldingLabel(l, w.Index-1), w.StrengthScore)
}
