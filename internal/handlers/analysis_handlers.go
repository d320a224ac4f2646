package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/epeers/rsiv/internal/cache"
	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var ErrAnalysisNotFound = errors.New("analysis not found or expired")

// AnalysisHandler handles the analysis endpoints
type AnalysisHandler struct {
	analyzer    services.Analyzer
	batchSvc    *services.BatchService
	results     *cache.MemoryCache
	maxHoldings int
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analyzer services.Analyzer, batchSvc *services.BatchService, results *cache.MemoryCache, maxHoldings int) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:    analyzer,
		batchSvc:    batchSvc,
		results:     results,
		maxHoldings: maxHoldings,
	}
}

// analyze converts, analyzes and caches a single request
func (h *AnalysisHandler) analyze(ctx context.Context, req *models.AnalyzeRequest, extra ...models.Warning) (*models.AnalysisResponse, error) {
	input, err := req.ToInput(h.maxHoldings)
	if err != nil {
		return nil, err
	}

	ctx, wc := services.NewWarningContext(ctx)
	for _, w := range extra {
		services.AddWarning(ctx, w)
	}

	result, err := h.analyzer.Analyze(ctx, input)
	if err != nil {
		return nil, err
	}

	analysis := &models.AnalysisResponse{
		Input:    input,
		Result:   *result,
		Warnings: wc.GetWarnings(),
	}
	h.results.Put(analysis)

	log.WithFields(log.Fields{
		"analysis_id": analysis.ID,
		"holdings":    len(input.Holdings),
		"action":      result.RecommendedAction,
	}).Info("portfolio analyzed")

	return analysis, nil
}

// Analyze handles POST /analyze
// @Summary Analyze a portfolio
// @Description Score a portfolio against the benchmark index, suggest a holding ratio and a rebalancing action
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Portfolio to analyze"
// @Success 200 {object} models.AnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	analysis, err := h.analyze(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// AnalyzeBatch handles POST /analyze/batch
// @Summary Analyze several portfolios
// @Description Analyze independent portfolios concurrently; the whole batch fails if one portfolio is invalid
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.BatchAnalyzeRequest true "Portfolios to analyze"
// @Success 200 {object} models.BatchAnalyzeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/batch [post]
func (h *AnalysisHandler) AnalyzeBatch(c *gin.Context) {
	var req models.BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if len(req.Portfolios) == 0 {
		badRequest(c, "portfolios must not be empty")
		return
	}

	inputs := make([]models.PortfolioInput, len(req.Portfolios))
	for i := range req.Portfolios {
		input, err := req.Portfolios[i].ToInput(h.maxHoldings)
		if err != nil {
			writeError(c, fmt.Errorf("portfolio[%d]: %w", i, err))
			return
		}
		inputs[i] = input
	}

	results, err := h.batchSvc.AnalyzeBatch(c.Request.Context(), inputs)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.BatchAnalyzeResponse{Analyses: make([]models.AnalysisResponse, len(results))}
	for i, r := range results {
		analysis := &models.AnalysisResponse{
			Input:    inputs[i],
			Result:   *r.Result,
			Warnings: r.Warnings,
		}
		h.results.Put(analysis)
		resp.Analyses[i] = *analysis
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeCSV handles POST /analyze/csv
// @Summary Analyze a portfolio uploaded as CSV
// @Description Holdings come from a CSV file with strength_score and invested_amount columns
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param safety_level formData int true "Index safety level (0-9)"
// @Param cash_balance formData number false "Cash balance"
// @Param holdings formData file true "Holdings CSV"
// @Success 200 {object} models.AnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/csv [post]
func (h *AnalysisHandler) AnalyzeCSV(c *gin.Context) {
	req, err := formScalars(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	fileHeader, err := c.FormFile("holdings")
	if err != nil {
		badRequest(c, "holdings file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, fmt.Sprintf("failed to open holdings file: %v", err))
		return
	}
	defer file.Close()

	holdings, skipped, err := ParseHoldingsCSV(file)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	req.Holdings = holdings

	var extra []models.Warning
	if skipped > 0 {
		extra = append(extra, models.Warning{
			Code:    models.WarnEmptyCSVRowsSkipped,
			Message: fmt.Sprintf("%d blank row(s) skipped", skipped),
		})
	}

	analysis, err := h.analyze(c.Request.Context(), req, extra...)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Get handles GET /analyses/:id
// @Summary Get a cached analysis
// @Tags analysis
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} models.AnalysisResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /analyses/{id} [get]
func (h *AnalysisHandler) Get(c *gin.Context) {
	analysis, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Delete handles DELETE /analyses/:id
// @Summary Discard a cached analysis
// @Description Reports and exports of the analysis are no longer available afterwards
// @Tags analysis
// @Param id path string true "Analysis ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /analyses/{id} [delete]
func (h *AnalysisHandler) Delete(c *gin.Context) {
	if !h.results.Evict(c.Param("id")) {
		writeError(c, ErrAnalysisNotFound)
		return
	}
	log.WithField("analysis_id", c.Param("id")).Info("analysis discarded")
	c.Status(http.StatusNoContent)
}

// lookup resolves the :id path parameter, writing a 404 when it is unknown
func (h *AnalysisHandler) lookup(c *gin.Context) (*models.AnalysisResponse, bool) {
	analysis, ok := h.results.Get(c.Param("id"))
	if !ok {
		writeError(c, ErrAnalysisNotFound)
		return nil, false
	}
	return analysis, true
}

// formScalars reads safety_level and cash_balance from a submitted form.
// Blank values stay unset so that ToInput reports them.
func formScalars(c *gin.Context) (*models.AnalyzeRequest, error) {
	req := &models.AnalyzeRequest{}

	if raw := c.PostForm("safety_level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid safety_level %q", raw)
		}
		req.SafetyLevel = &level
	}

	cash, err := optionalFloat("cash_balance", c.PostForm("cash_balance"))
	if err != nil {
		return nil, err
	}
	req.CashBalance = cash

	return req, nil
}

func optionalFloat(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}
