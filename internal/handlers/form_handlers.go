package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/renderer"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var pages embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(pages, "templates/*.html"))

const defaultFormRows = 3

// FormHandler serves the interactive input form and its HTML result page
type FormHandler struct {
	analysis *AnalysisHandler
	lang     string
	currency string
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(analysis *AnalysisHandler, lang, currency string) *FormHandler {
	return &FormHandler{
		analysis: analysis,
		lang:     lang,
		currency: currency,
	}
}

type formRow struct {
	StrengthScore  string
	InvestedAmount string
}

type formPage struct {
	Lang        string
	L           renderer.Labels
	Error       string
	MaxHoldings int
	SafetyLevel string
	CashBalance string
	Rows        []formRow
}

type resultPage struct {
	Lang   string
	L      renderer.Labels
	ID     string
	Report template.HTML
}

// Form handles GET /
func (h *FormHandler) Form(c *gin.Context) {
	n := defaultFormRows
	if raw := c.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || (h.analysis.maxHoldings > 0 && v > h.analysis.maxHoldings) {
			badRequest(c, fmt.Sprintf("invalid holding count %q", raw))
			return
		}
		n = v
	}

	page := h.newPage()
	page.SafetyLevel = "5"
	page.CashBalance = "0"
	page.Rows = make([]formRow, n)
	for i := range page.Rows {
		page.Rows[i] = formRow{StrengthScore: "50", InvestedAmount: "1000000"}
	}
	h.render(c, http.StatusOK, "form.html", page)
}

// Submit handles POST /report
func (h *FormHandler) Submit(c *gin.Context) {
	scores := c.PostFormArray("strength_score")
	amounts := c.PostFormArray("invested_amount")

	page := h.newPage()
	page.SafetyLevel = c.PostForm("safety_level")
	page.CashBalance = c.PostForm("cash_balance")
	for i := 0; i < len(scores) || i < len(amounts); i++ {
		page.Rows = append(page.Rows, formRow{StrengthScore: at(scores, i), InvestedAmount: at(amounts, i)})
	}

	fail := func(err error) {
		status, _ := statusFor(err)
		page.Error = err.Error()
		h.render(c, status, "form.html", page)
	}

	req, err := formScalars(c)
	if err != nil {
		fail(fmt.Errorf("%w: %v", models.ErrOutOfRange, err))
		return
	}
	for i, row := range page.Rows {
		score, err := optionalFloat(fmt.Sprintf("strength_score[%d]", i), row.StrengthScore)
		if err != nil {
			fail(fmt.Errorf("%w: %v", models.ErrOutOfRange, err))
			return
		}
		amount, err := optionalFloat(fmt.Sprintf("invested_amount[%d]", i), row.InvestedAmount)
		if err != nil {
			fail(fmt.Errorf("%w: %v", models.ErrOutOfRange, err))
			return
		}
		req.Holdings = append(req.Holdings, models.HoldingRequest{StrengthScore: score, InvestedAmount: amount})
	}

	analysis, err := h.analysis.analyze(c.Request.Context(), req)
	if err != nil {
		fail(err)
		return
	}

	extended, _ := strconv.ParseBool(c.PostForm("extended"))
	md, err := renderer.RenderReport(analysis, renderer.ReportOptions{Extended: extended, Lang: h.lang, Currency: h.currency})
	if err != nil {
		writeError(c, err)
		return
	}
	fragment, err := renderer.ToHTML(md)
	if err != nil {
		writeError(c, err)
		return
	}

	h.render(c, http.StatusOK, "result.html", resultPage{
		Lang:   h.lang,
		L:      renderer.LabelsFor(h.lang),
		ID:     analysis.ID,
		Report: template.HTML(fragment),
	})
}

func (h *FormHandler) newPage() formPage {
	return formPage{Lang: h.lang, L: renderer.LabelsFor(h.lang), MaxHoldings: h.analysis.maxHoldings}
}

func (h *FormHandler) render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		writeError(c, fmt.Errorf("failed to render %s: %w", name, err))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
