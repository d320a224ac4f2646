package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/epeers/rsiv/internal/models"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidInput = errors.New("total investment cannot be zero")
)

// Analyzer scores a portfolio and recommends a rebalancing action.
type Analyzer interface {
	Analyze(ctx context.Context, input models.PortfolioInput) (*models.AnalysisResult, error)
}

// AnalyzerService is the default Analyzer
type AnalyzerService struct{}

// NewAnalyzerService creates a new AnalyzerService
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze runs the whole pipeline on a fully specified input.
// It is all-or-nothing: on error no partial result is returned.
// Advisory conditions are reported through the warning collector in ctx, if any.
func (s *AnalyzerService) Analyze(ctx context.Context, input models.PortfolioInput) (*models.AnalysisResult, error) {
	defer TrackTime("Analyze", time.Now())

	score, weights, err := ComputeWeightedScore(input.Holdings)
	if err != nil {
		return nil, err
	}

	suggested := SuggestHoldingRatio(input.SafetyLevel, score)
	stockPct, cashPct, total := ComputeActualWeights(input.Holdings, input.CashBalance)
	action, amount := GenerateRecommendation(stockPct, suggested, total)
	weak := IdentifyWeakHoldings(input.Holdings)

	result := &models.AnalysisResult{
		WeightedScore:         score,
		PerHoldingWeights:     weights,
		SuggestedHoldingRatio: suggested,
		ActualStockWeightPct:  stockPct,
		CashWeightPct:         cashPct,
		TotalInvested:         input.TotalInvested(),
		TotalPortfolioValue:   total,
		RecommendedAction:     action,
		RecommendedAmount:     amount,
		WeakHoldings:          weak,
	}

	addAdvisories(ctx, result)
	return result, nil
}

func addAdvisories(ctx context.Context, r *models.AnalysisResult) {
	if r.SuggestedHoldingRatio > 100 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnRatioAboveHundred,
			Message: fmt.Sprintf("suggested holding ratio %.2f%% is above 100%%", r.SuggestedHoldingRatio),
		})
	}
	if diff := math.Abs(r.Difference()); diff > 0 && diff < models.NegligibleGapPct {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnNegligibleGap,
			Message: fmt.Sprintf("%s of %.2f is negligible (gap %.4f points)", r.RecommendedAction, r.RecommendedAmount, diff),
		})
	}
	if len(r.WeakHoldings) > 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnWeakHoldings,
			Message: fmt.Sprintf("%d holding(s) score below %.0f", len(r.WeakHoldings), models.WeakScoreThreshold),
		})
	}
}

// ComputeWeightedScore returns the investment-weighted average of the strength scores
// together with each holding's weight in percent of the total invested amount.
func ComputeWeightedScore(holdings []models.Holding) (float64, []float64, error) {
	scores := make([]float64, len(holdings))
	invested := make([]float64, len(holdings))
	for i, h := range holdings {
		scores[i] = h.StrengthScore
		invested[i] = h.InvestedAmount
	}

	total := floats.Sum(invested)
	if total == 0 {
		return 0, nil, ErrInvalidInput
	}

	weights := make([]float64, len(holdings))
	floats.ScaleTo(weights, 100/total, invested)

	return floats.Dot(scores, weights) / 100, weights, nil
}

// SuggestHoldingRatio returns the advisory percentage of the portfolio to hold in equities.
// The value is not clamped and may exceed 100.
func SuggestHoldingRatio(safetyLevel int, weightedScore float64) float64 {
	return float64(safetyLevel) * 10 * (weightedScore / 50)
}

// IdentifyWeakHoldings lists, in original order, the holdings scoring strictly below
// models.WeakScoreThreshold.
func IdentifyWeakHoldings(holdings []models.Holding) []models.WeakHolding {
	var weak []models.WeakHolding
	for i, h := range holdings {
		if h.StrengthScore < models.WeakScoreThreshold {
			weak = append(weak, models.WeakHolding{Index: i + 1, StrengthScore: h.StrengthScore})
		}
	}
	return weak
}

// ComputeActualWeights returns the current stock and cash weights in percent of the total
// portfolio value, and that total. An empty portfolio yields zero weights rather than an error.
func ComputeActualWeights(holdings []models.Holding, cashBalance float64) (float64, float64, float64) {
	var invested float64
	for _, h := range holdings {
		invested += h.InvestedAmount
	}

	total := invested + cashBalance
	if total == 0 {
		return 0, 0, 0
	}
	return invested / total * 100, cashBalance / total * 100, total
}

// GenerateRecommendation returns the action and the absolute amount of money to move
// so that the stock weight reaches the suggested ratio.
func GenerateRecommendation(actualStockWeightPct, suggestedRatio, totalPortfolioValue float64) (models.RecommendedAction, float64) {
	difference := suggestedRatio - actualStockWeightPct
	switch {
	case difference > 0:
		return models.ActionIncrease, totalPortfolioValue * (difference / 100)
	case difference < 0:
		return models.ActionDecrease, totalPortfolioValue * (math.Abs(difference) / 100)
	default:
		return models.ActionHold, 0
	}
}
