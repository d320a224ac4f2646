package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/services"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeWeightedScore_EqualScores(t *testing.T) {
	distributions := [][]float64{
		{1, 1, 1},
		{1_000_000, 3, 42_000},
		{0, 0, 7},
		{123.45, 0.01, 9_999_999},
	}

	for _, invested := range distributions {
		holdings := make([]models.Holding, len(invested))
		for i, inv := range invested {
			holdings[i] = models.Holding{StrengthScore: 72.5, InvestedAmount: inv}
		}

		score, _, err := services.ComputeWeightedScore(holdings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(score, 72.5, tolerance) {
			t.Errorf("invested %v: expected weighted score 72.5, got %v", invested, score)
		}
	}
}

func TestComputeWeightedScore_WeightsSumToHundred(t *testing.T) {
	holdings := []models.Holding{
		{StrengthScore: 10, InvestedAmount: 333_333.33},
		{StrengthScore: 90, InvestedAmount: 0.07},
		{StrengthScore: 55, InvestedAmount: 1_234_567.89},
		{StrengthScore: 49, InvestedAmount: 17},
	}

	_, weights, err := services.ComputeWeightedScore(holdings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weights) != len(holdings) {
		t.Fatalf("expected %d weights, got %d", len(holdings), len(weights))
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if !approxEqual(sum, 100, tolerance) {
		t.Errorf("expected weights to sum to 100, got %v", sum)
	}
}

func TestComputeWeightedScore_ZeroInvestment(t *testing.T) {
	holdings := []models.Holding{{StrengthScore: 20, InvestedAmount: 0}}

	_, _, err := services.ComputeWeightedScore(holdings)
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "total investment cannot be zero" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestSuggestHoldingRatio(t *testing.T) {
	tests := []struct {
		safety int
		score  float64
		want   float64
	}{
		{9, 50, 90},
		{9, 60, 108},
		{5, 50, 50},
		{1, 100, 20},
		{0, 0, 0},
		{0, 87, 0},
		{0, 1e6, 0},
	}

	for _, tt := range tests {
		got := services.SuggestHoldingRatio(tt.safety, tt.score)
		if !approxEqual(got, tt.want, tolerance) {
			t.Errorf("SuggestHoldingRatio(%d, %v) = %v, want %v", tt.safety, tt.score, got, tt.want)
		}
	}
}

func TestSuggestHoldingRatio_Monotonic(t *testing.T) {
	prev := -1.0
	for level := 0; level <= models.MaxSafetyLevel; level++ {
		got := services.SuggestHoldingRatio(level, 40)
		if got <= prev {
			t.Errorf("ratio not increasing with safety level at %d: %v <= %v", level, got, prev)
		}
		prev = got
	}

	prev = -1.0
	for _, score := range []float64{0, 10, 49.999, 50, 75, 150} {
		got := services.SuggestHoldingRatio(7, score)
		if got <= prev {
			t.Errorf("ratio not increasing with score at %v: %v <= %v", score, got, prev)
		}
		prev = got
	}
}

func TestIdentifyWeakHoldings_StrictThreshold(t *testing.T) {
	holdings := []models.Holding{
		{StrengthScore: 50, InvestedAmount: 1},
		{StrengthScore: 49.999, InvestedAmount: 1},
		{StrengthScore: 80, InvestedAmount: 1},
		{StrengthScore: 0, InvestedAmount: 1},
	}

	weak := services.IdentifyWeakHoldings(holdings)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak holdings, got %d: %+v", len(weak), weak)
	}
	if weak[0].Index != 2 || weak[0].StrengthScore != 49.999 {
		t.Errorf("unexpected first weak holding: %+v", weak[0])
	}
	if weak[1].Index != 4 || weak[1].StrengthScore != 0 {
		t.Errorf("unexpected second weak holding: %+v", weak[1])
	}
	if weak[0].Label() != "Holding 2" {
		t.Errorf("expected label 'Holding 2', got %q", weak[0].Label())
	}
}

func TestIdentifyWeakHoldings_None(t *testing.T) {
	weak := services.IdentifyWeakHoldings([]models.Holding{{StrengthScore: 50}, {StrengthScore: 99}})
	if len(weak) != 0 {
		t.Errorf("expected no weak holdings, got %+v", weak)
	}
}

func TestComputeActualWeights(t *testing.T) {
	holdings := []models.Holding{
		{StrengthScore: 60, InvestedAmount: 300_000},
		{StrengthScore: 40, InvestedAmount: 200_000},
	}

	stock, cash, total := services.ComputeActualWeights(holdings, 500_000)
	if total != 1_000_000 {
		t.Errorf("expected total 1000000, got %v", total)
	}
	if !approxEqual(stock, 50, tolerance) || !approxEqual(cash, 50, tolerance) {
		t.Errorf("expected 50/50, got %v/%v", stock, cash)
	}
}

func TestComputeActualWeights_SumToHundred(t *testing.T) {
	cases := []struct {
		invested []float64
		cash     float64
	}{
		{[]float64{1}, 0},
		{[]float64{0}, 1},
		{[]float64{0.1, 0.2}, 0.3},
		{[]float64{123_456.789, 98_765.4321}, 7_777_777.7},
	}

	for _, tc := range cases {
		holdings := make([]models.Holding, len(tc.invested))
		for i, inv := range tc.invested {
			holdings[i] = models.Holding{InvestedAmount: inv}
		}
		stock, cash, total := services.ComputeActualWeights(holdings, tc.cash)
		if total <= 0 {
			t.Fatalf("expected positive total for %+v", tc)
		}
		if !approxEqual(stock+cash, 100, tolerance) {
			t.Errorf("%+v: expected weights to sum to 100, got %v", tc, stock+cash)
		}
	}
}

func TestComputeActualWeights_EmptyPortfolio(t *testing.T) {
	stock, cash, total := services.ComputeActualWeights([]models.Holding{{StrengthScore: 70}}, 0)
	if stock != 0 || cash != 0 || total != 0 {
		t.Errorf("expected zeros for empty portfolio, got %v/%v/%v", stock, cash, total)
	}
}

func TestGenerateRecommendation(t *testing.T) {
	tests := []struct {
		name       string
		actual     float64
		suggested  float64
		total      float64
		wantAction models.RecommendedAction
		wantAmount float64
	}{
		{"increase", 50, 108, 1_000_000, models.ActionIncrease, 580_000},
		{"decrease", 80, 30, 200_000, models.ActionDecrease, 100_000},
		{"hold", 63.5, 63.5, 5_000_000, models.ActionHold, 0},
		{"hold on empty portfolio", 0, 0, 0, models.ActionHold, 0},
		{"increase on empty portfolio", 0, 45, 0, models.ActionIncrease, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, amount := services.GenerateRecommendation(tt.actual, tt.suggested, tt.total)
			if action != tt.wantAction {
				t.Errorf("expected action %s, got %s", tt.wantAction, action)
			}
			if !approxEqual(amount, tt.wantAmount, 1e-6) {
				t.Errorf("expected amount %v, got %v", tt.wantAmount, amount)
			}
			if amount < 0 {
				t.Errorf("amount must never be negative, got %v", amount)
			}
		})
	}
}

func TestGenerateRecommendation_NeverNegative(t *testing.T) {
	for actual := 0.0; actual <= 100; actual += 12.5 {
		for suggested := 0.0; suggested <= 180; suggested += 15 {
			action, amount := services.GenerateRecommendation(actual, suggested, 2_500_000)
			if amount < 0 {
				t.Errorf("negative amount for actual=%v suggested=%v: %v", actual, suggested, amount)
			}
			if (action == models.ActionHold) != (actual == suggested) {
				t.Errorf("Hold must be returned exactly when equal: actual=%v suggested=%v action=%s", actual, suggested, action)
			}
			if action == models.ActionHold && amount != 0 {
				t.Errorf("Hold must carry a zero amount, got %v", amount)
			}
		}
	}
}

func TestAnalyze_TwoHoldingsFullyInvested(t *testing.T) {
	input := models.PortfolioInput{
		SafetyLevel: 5,
		Holdings: []models.Holding{
			{StrengthScore: 80, InvestedAmount: 2_000_000},
			{StrengthScore: 30, InvestedAmount: 1_000_000},
		},
		CashBalance: 0,
	}

	ctx, wc := services.NewWarningContext(context.Background())
	result, err := services.NewAnalyzerService().Analyze(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalInvested != 3_000_000 || result.TotalPortfolioValue != 3_000_000 {
		t.Errorf("unexpected totals: invested=%v value=%v", result.TotalInvested, result.TotalPortfolioValue)
	}
	if !approxEqual(result.PerHoldingWeights[0], 200.0/3, 1e-9) || !approxEqual(result.PerHoldingWeights[1], 100.0/3, 1e-9) {
		t.Errorf("unexpected weights: %v", result.PerHoldingWeights)
	}
	if !approxEqual(result.WeightedScore, 190.0/3, 1e-9) {
		t.Errorf("expected weighted score 63.33, got %v", result.WeightedScore)
	}
	if !approxEqual(result.SuggestedHoldingRatio, 190.0/3, 1e-9) {
		t.Errorf("expected suggested ratio 63.33, got %v", result.SuggestedHoldingRatio)
	}
	if result.ActualStockWeightPct != 100 || result.CashWeightPct != 0 {
		t.Errorf("expected 100/0 weights, got %v/%v", result.ActualStockWeightPct, result.CashWeightPct)
	}
	if result.RecommendedAction != models.ActionDecrease {
		t.Errorf("expected Decrease, got %s", result.RecommendedAction)
	}
	// 3,000,000 * (100 - 63.33) / 100
	if !approxEqual(result.RecommendedAmount, 1_100_000, 1e-6) {
		t.Errorf("expected amount 1100000, got %v", result.RecommendedAmount)
	}
	if len(result.WeakHoldings) != 1 || result.WeakHoldings[0].Index != 2 {
		t.Errorf("expected holding 2 to be weak, got %+v", result.WeakHoldings)
	}
	if !wc.HasWarning(models.WarnWeakHoldings) {
		t.Errorf("expected weak holdings warning, got %+v", wc.GetWarnings())
	}
	if wc.HasWarning(models.WarnRatioAboveHundred) {
		t.Errorf("did not expect ratio warning, got %+v", wc.GetWarnings())
	}
}

func TestAnalyze_HalfCashHighSafety(t *testing.T) {
	input := models.PortfolioInput{
		SafetyLevel: 9,
		Holdings:    []models.Holding{{StrengthScore: 60, InvestedAmount: 500_000}},
		CashBalance: 500_000,
	}

	ctx, wc := services.NewWarningContext(context.Background())
	result, err := services.NewAnalyzerService().Analyze(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalPortfolioValue != 1_000_000 {
		t.Errorf("expected total 1000000, got %v", result.TotalPortfolioValue)
	}
	if result.ActualStockWeightPct != 50 || result.CashWeightPct != 50 {
		t.Errorf("expected 50/50, got %v/%v", result.ActualStockWeightPct, result.CashWeightPct)
	}
	if !approxEqual(result.WeightedScore, 60, tolerance) {
		t.Errorf("expected weighted score 60, got %v", result.WeightedScore)
	}
	if !approxEqual(result.SuggestedHoldingRatio, 108, tolerance) {
		t.Errorf("expected suggested ratio 108, got %v", result.SuggestedHoldingRatio)
	}
	if result.RecommendedAction != models.ActionIncrease {
		t.Errorf("expected Increase, got %s", result.RecommendedAction)
	}
	if !approxEqual(result.RecommendedAmount, 580_000, 1e-6) {
		t.Errorf("expected amount 580000, got %v", result.RecommendedAmount)
	}
	if len(result.WeakHoldings) != 0 {
		t.Errorf("expected no weak holdings, got %+v", result.WeakHoldings)
	}
	if !wc.HasWarning(models.WarnRatioAboveHundred) {
		t.Errorf("expected ratio above hundred warning, got %+v", wc.GetWarnings())
	}
}

func TestAnalyze_ZeroInvestmentProducesNoResult(t *testing.T) {
	input := models.PortfolioInput{
		SafetyLevel: 5,
		Holdings:    []models.Holding{{StrengthScore: 20, InvestedAmount: 0}},
	}

	ctx, wc := services.NewWarningContext(context.Background())
	result, err := services.NewAnalyzerService().Analyze(ctx, input)
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if result != nil {
		t.Errorf("expected no result on failure, got %+v", result)
	}
	if len(wc.GetWarnings()) != 0 {
		t.Errorf("expected no warnings on failure, got %+v", wc.GetWarnings())
	}
}

func TestAnalyze_NegligibleGapWarning(t *testing.T) {
	// suggested 5 * 10 * 50.002 / 50 = 50.002 against an actual stock weight of 50
	input := models.PortfolioInput{
		SafetyLevel: 5,
		Holdings:    []models.Holding{{StrengthScore: 50.002, InvestedAmount: 1_000}},
		CashBalance: 1_000,
	}

	ctx, wc := services.NewWarningContext(context.Background())
	result, err := services.NewAnalyzerService().Analyze(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecommendedAction != models.ActionIncrease {
		t.Errorf("expected Increase, got %s", result.RecommendedAction)
	}
	if !wc.HasWarning(models.WarnNegligibleGap) {
		t.Errorf("expected negligible gap warning, got %+v", wc.GetWarnings())
	}
}

func TestAnalyze_WithoutWarningCollector(t *testing.T) {
	input := models.PortfolioInput{
		SafetyLevel: 9,
		Holdings:    []models.Holding{{StrengthScore: 10, InvestedAmount: 1}},
	}
	if _, err := services.NewAnalyzerService().Analyze(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
