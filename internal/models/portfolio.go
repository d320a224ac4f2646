package models

import (
	"encoding/json"
	"fmt"
)

// WeakScoreThreshold is the strength score below which a holding is considered weak.
// Scores at or above it denote outperformance against the benchmark index.
const WeakScoreThreshold = 50.0

// MaxSafetyLevel is the highest index safety level accepted at the input boundary.
const MaxSafetyLevel = 9

// RecommendedAction is the rebalancing direction suggested for the equity part of a portfolio
type RecommendedAction string

const (
	ActionIncrease RecommendedAction = "Increase"
	ActionDecrease RecommendedAction = "Decrease"
	ActionHold     RecommendedAction = "Hold"
)

// Holding is a single equity position: its relative strength score (RSIV) against the
// benchmark index and the amount currently invested in it.
type Holding struct {
	StrengthScore  float64 `json:"strength_score"`
	InvestedAmount float64 `json:"invested_amount"`
}

// Label returns the display label of the holding at the given 0-based position.
func Label(index int) string {
	return fmt.Sprintf("Holding %d", index+1)
}

// PortfolioInput is a fully specified analysis request.
// Range validation happens where the input is collected, not in the analyzer.
type PortfolioInput struct {
	SafetyLevel int       `json:"safety_level"`
	Holdings    []Holding `json:"holdings"`
	CashBalance float64   `json:"cash_balance"`
}

// TotalInvested sums the invested amount over all holdings
func (p PortfolioInput) TotalInvested() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.InvestedAmount
	}
	return total
}

// WeakHolding identifies a holding whose strength score is below WeakScoreThreshold.
// Index is 1-based, matching the display label.
type WeakHolding struct {
	Index         int     `json:"index"`
	StrengthScore float64 `json:"strength_score"`
}

// Label returns the display label of the weak holding
func (w WeakHolding) Label() string {
	return Label(w.Index - 1)
}

// AnalysisResult is the outcome of a single portfolio analysis.
// All percentages are expressed in percent (60 = 60%).
type AnalysisResult struct {
	WeightedScore         float64           `json:"weighted_score"`
	PerHoldingWeights     []float64         `json:"per_holding_weights"`
	SuggestedHoldingRatio float64           `json:"suggested_holding_ratio"`
	ActualStockWeightPct  float64           `json:"actual_stock_weight_pct"`
	CashWeightPct         float64           `json:"cash_weight_pct"`
	TotalInvested         float64           `json:"total_invested"`
	TotalPortfolioValue   float64           `json:"total_portfolio_value"`
	RecommendedAction     RecommendedAction `json:"recommended_action"`
	RecommendedAmount     float64           `json:"recommended_amount"`
	WeakHoldings          []WeakHolding     `json:"weak_holdings"`
}

// Difference returns the gap, in percentage points, between the suggested holding ratio
// and the actual stock weight.
func (r AnalysisResult) Difference() float64 {
	return r.SuggestedHoldingRatio - r.ActualStockWeightPct
}

func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type plain AnalysisResult
	p := plain(r)
	// Keep the arrays present in the payload even when empty
	if p.PerHoldingWeights == nil {
		p.PerHoldingWeights = []float64{}
	}
	if p.WeakHoldings == nil {
		p.WeakHoldings = []WeakHolding{}
	}
	return json.Marshal(p)
}
