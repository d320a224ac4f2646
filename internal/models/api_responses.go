package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrOutOfRange   = errors.New("value out of range")
)

// HoldingRequest is a holding as entered by a user. Nil fields were left unset.
type HoldingRequest struct {
	StrengthScore  *float64 `json:"strength_score"`
	InvestedAmount *float64 `json:"invested_amount"`
}

// AnalyzeRequest represents the request body for analyzing a portfolio.
// A nil SafetyLevel or holding field means the user never filled it in;
// a nil CashBalance defaults to zero.
type AnalyzeRequest struct {
	SafetyLevel *int             `json:"safety_level"`
	Holdings    []HoldingRequest `json:"holdings"`
	CashBalance *float64         `json:"cash_balance"`
}

// ToInput converts the request into a fully specified PortfolioInput.
// maxHoldings <= 0 disables the upper bound on the number of holdings.
func (r *AnalyzeRequest) ToInput(maxHoldings int) (PortfolioInput, error) {
	var missing []string
	var invalid []string

	if r.SafetyLevel == nil {
		missing = append(missing, "safety_level")
	} else if *r.SafetyLevel < 0 || *r.SafetyLevel > MaxSafetyLevel {
		invalid = append(invalid, fmt.Sprintf("safety_level must be between 0 and %d, got %d", MaxSafetyLevel, *r.SafetyLevel))
	}

	if len(r.Holdings) == 0 {
		invalid = append(invalid, "at least one holding is required")
	} else if maxHoldings > 0 && len(r.Holdings) > maxHoldings {
		invalid = append(invalid, fmt.Sprintf("at most %d holdings are allowed, got %d", maxHoldings, len(r.Holdings)))
	}

	cash := 0.0
	if r.CashBalance != nil {
		cash = *r.CashBalance
		if msg := checkAmount("cash_balance", cash); msg != "" {
			invalid = append(invalid, msg)
		}
	}

	holdings := make([]Holding, len(r.Holdings))
	for i, h := range r.Holdings {
		if h.StrengthScore == nil {
			missing = append(missing, fmt.Sprintf("holdings[%d].strength_score", i))
		} else if msg := checkAmount(fmt.Sprintf("holdings[%d].strength_score", i), *h.StrengthScore); msg != "" {
			invalid = append(invalid, msg)
		} else {
			holdings[i].StrengthScore = *h.StrengthScore
		}

		if h.InvestedAmount == nil {
			missing = append(missing, fmt.Sprintf("holdings[%d].invested_amount", i))
		} else if msg := checkAmount(fmt.Sprintf("holdings[%d].invested_amount", i), *h.InvestedAmount); msg != "" {
			invalid = append(invalid, msg)
		} else {
			holdings[i].InvestedAmount = *h.InvestedAmount
		}
	}

	if len(missing) > 0 {
		return PortfolioInput{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return PortfolioInput{}, fmt.Errorf("%w: %s", ErrOutOfRange, strings.Join(invalid, "; "))
	}

	return PortfolioInput{
		SafetyLevel: *r.SafetyLevel,
		Holdings:    holdings,
		CashBalance: cash,
	}, nil
}

// checkAmount returns why v is not a usable non-negative finite number, or ""
func checkAmount(name string, v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprintf("%s must be a finite number", name)
	case v < 0:
		return fmt.Sprintf("%s cannot be negative", name)
	}
	return ""
}

// AnalysisResponse represents a completed analysis. ID can be used to fetch
// reports and exports of the same analysis while it is cached.
type AnalysisResponse struct {
	ID       string         `json:"id"`
	Input    PortfolioInput `json:"input"`
	Result   AnalysisResult `json:"result"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// BatchAnalyzeRequest represents the request body for analyzing several portfolios at once
type BatchAnalyzeRequest struct {
	Portfolios []AnalyzeRequest `json:"portfolios" binding:"required"`
}

// BatchAnalyzeResponse lists analyses in request order
type BatchAnalyzeResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
