package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/epeers/rsiv/internal/cache"
	"github.com/epeers/rsiv/internal/export"
	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/renderer"
	"github.com/gin-gonic/gin"
)

// ReportHandler renders cached analyses as reports and downloadable exports
type ReportHandler struct {
	results  *cache.MemoryCache
	lang     string
	currency string
}

// NewReportHandler creates a new ReportHandler with default language and currency
func NewReportHandler(results *cache.MemoryCache, lang, currency string) *ReportHandler {
	return &ReportHandler{
		results:  results,
		lang:     lang,
		currency: currency,
	}
}

// reportOptions reads ?extended= and ?lang= falling back to the handler defaults
func (h *ReportHandler) reportOptions(c *gin.Context) (renderer.ReportOptions, error) {
	opts := renderer.ReportOptions{Lang: h.lang, Currency: h.currency}

	if raw := c.Query("extended"); raw != "" {
		extended, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid extended flag %q", raw)
		}
		opts.Extended = extended
	}
	if lang := c.Query("lang"); lang != "" {
		if !renderer.ValidLang(lang) {
			return opts, fmt.Errorf("unsupported lang %q", lang)
		}
		opts.Lang = lang
	}
	return opts, nil
}

// Report handles GET /analyses/:id/report
// @Summary Render an analysis report
// @Description Markdown (default) or HTML report; extended=true adds the per-holding breakdown
// @Tags reports
// @Produce text/markdown
// @Produce text/html
// @Param id path string true "Analysis ID"
// @Param extended query bool false "Include the per-holding breakdown"
// @Param lang query string false "vi or en"
// @Param format query string false "md or html"
// @Success 200 {string} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /analyses/{id}/report [get]
func (h *ReportHandler) Report(c *gin.Context) {
	analysis, ok := h.results.Get(c.Param("id"))
	if !ok {
		writeError(c, ErrAnalysisNotFound)
		return
	}

	opts, err := h.reportOptions(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	md, err := renderer.RenderReport(analysis, opts)
	if err != nil {
		writeError(c, err)
		return
	}

	switch c.DefaultQuery("format", "md") {
	case "md":
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "html":
		fragment, err := renderer.ToHTML(md)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
	default:
		badRequest(c, "format must be 'md' or 'html'")
	}
}

// Export handles GET /analyses/:id/export/:format
// @Summary Download an analysis export
// @Tags reports
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Analysis ID"
// @Param format path string true "csv or pdf"
// @Param lang query string false "vi or en (csv only)"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /analyses/{id}/export/{format} [get]
func (h *ReportHandler) Export(c *gin.Context) {
	analysis, ok := h.results.Get(c.Param("id"))
	if !ok {
		writeError(c, ErrAnalysisNotFound)
		return
	}

	opts, err := h.reportOptions(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	exp, err := export.ByFormat(c.Param("format"), export.Options{Lang: opts.Lang, Currency: opts.Currency})
	if err != nil {
		writeError(c, err)
		return
	}

	h.writeExport(c, exp, analysis)
}

func (h *ReportHandler) writeExport(c *gin.Context, exp export.Exporter, analysis *models.AnalysisResponse) {
	var buf bytes.Buffer
	if err := exp.Export(&buf, analysis); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exp.FileName()))
	c.Data(http.StatusOK, exp.ContentType(), buf.Bytes())
}
