package export

import (
	"fmt"
	"io"

	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/renderer"
	"github.com/go-pdf/fpdf"
)

// PDFExporter writes a paginated A4 document. Labels are always English:
// the core PDF fonts have no glyphs for Vietnamese.
type PDFExporter struct {
	labels   renderer.Labels
	currency string
}

// NewPDFExporter creates a new PDFExporter displaying amounts in currency
func NewPDFExporter(currency string) *PDFExporter {
	if currency == "" {
		currency = renderer.DefaultCurrency
	}
	return &PDFExporter{
		labels:   renderer.LabelsFor(renderer.LangEnglish),
		currency: currency,
	}
}

func (e *PDFExporter) Format() string      { return "pdf" }
func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) FileName() string    { return "ket_qua_rsiv.pdf" }

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 7.0
)

var holdingColumns = []float64{40, 30, 50, 30, 40}

// Export writes the analysis to w
func (e *PDFExporter) Export(w io.Writer, a *models.AnalysisResponse) error {
	l := e.labels
	r := a.Result

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("RSIV portfolio analysis", false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 12, l.Title, "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", 11)
	summary := [][2]string{
		{l.WeightedScore, fmt.Sprintf("%.2f", r.WeightedScore)},
		{l.SuggestedRatio, fmt.Sprintf("%.2f%%", r.SuggestedHoldingRatio)},
		{l.TotalValue, e.amount(r.TotalPortfolioValue)},
		{l.TotalInvested, e.amount(r.TotalInvested)},
		{l.Cash, e.amount(a.Input.CashBalance)},
		{l.StockWeight, fmt.Sprintf("%.2f%%", r.ActualStockWeightPct)},
		{l.CashWeight, fmt.Sprintf("%.2f%%", r.CashWeightPct)},
		{l.Recommendation, fmt.Sprintf(l.Adjust, l.Actions[r.RecommendedAction], e.amount(r.RecommendedAmount))},
	}
	for _, row := range summary {
		pdf.CellFormat(75, pdfLineHeight, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLineHeight, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(pdfLineHeight)

	pdf.SetFont(pdfFont, "B", 13)
	pdf.CellFormat(0, 10, l.BreakdownHeader, "", 1, "L", false, 0, "")
	header := []string{l.Holding, l.Score, l.Invested, l.Weight, l.Contribution}
	pdf.SetFont(pdfFont, "B", 10)
	for i, h := range header {
		pdf.CellFormat(holdingColumns[i], pdfLineHeight, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 10)
	for i, h := range a.Input.Holdings {
		var weight float64
		if i < len(r.PerHoldingWeights) {
			weight = r.PerHoldingWeights[i]
		}
		cells := []string{
			renderer.HoldingLabel(l, i),
			fmt.Sprintf("%.2f", h.StrengthScore),
			e.amount(h.InvestedAmount),
			fmt.Sprintf("%.2f%%", weight),
			fmt.Sprintf("%.2f", h.StrengthScore*weight/100),
		}
		for c, text := range cells {
			align := "R"
			if c == 0 {
				align = "L"
			}
			pdf.CellFormat(holdingColumns[c], pdfLineHeight, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(pdfLineHeight)

	pdf.SetFont(pdfFont, "B", 13)
	pdf.CellFormat(0, 10, l.WeakNotes, "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 11)
	if len(r.WeakHoldings) == 0 {
		pdf.MultiCell(0, pdfLineHeight, l.NoWeak, "", "L", false)
	}
	for _, weak := range r.WeakHoldings {
		pdf.MultiCell(0, pdfLineHeight, "- "+renderer.WeakLine(l, weak)+" "+l.WeakAdvice, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (e *PDFExporter) amount(v float64) string {
	return fmt.Sprintf("%s %s", fixed(v), e.currency)
}
