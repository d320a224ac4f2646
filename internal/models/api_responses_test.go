package models_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/epeers/rsiv/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToInput_Complete(t *testing.T) {
	req := models.AnalyzeRequest{
		SafetyLevel: ptr(7),
		Holdings: []models.HoldingRequest{
			{StrengthScore: ptr(55.5), InvestedAmount: ptr(1000.0)},
			{StrengthScore: ptr(0.0), InvestedAmount: ptr(0.0)},
		},
		CashBalance: ptr(250.0),
	}

	input, err := req.ToInput(50)
	require.NoError(t, err)
	assert.Equal(t, 7, input.SafetyLevel)
	assert.Equal(t, 250.0, input.CashBalance)
	assert.Equal(t, []models.Holding{{StrengthScore: 55.5, InvestedAmount: 1000}, {}}, input.Holdings)
	assert.Equal(t, 1000.0, input.TotalInvested())
}

func TestToInput_CashDefaultsToZero(t *testing.T) {
	req := models.AnalyzeRequest{
		SafetyLevel: ptr(0),
		Holdings:    []models.HoldingRequest{{StrengthScore: ptr(50.0), InvestedAmount: ptr(1.0)}},
	}

	input, err := req.ToInput(0)
	require.NoError(t, err)
	assert.Zero(t, input.CashBalance)
}

func TestToInput_MissingFields(t *testing.T) {
	req := models.AnalyzeRequest{
		Holdings: []models.HoldingRequest{
			{StrengthScore: ptr(50.0)},
			{InvestedAmount: ptr(1.0)},
		},
	}

	_, err := req.ToInput(50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrMissingField))
	for _, field := range []string{"safety_level", "holdings[0].invested_amount", "holdings[1].strength_score"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestToInput_OutOfRange(t *testing.T) {
	one := models.HoldingRequest{StrengthScore: ptr(50.0), InvestedAmount: ptr(1.0)}

	tests := []struct {
		name string
		req  models.AnalyzeRequest
		max  int
		want string
	}{
		{"negative safety", models.AnalyzeRequest{SafetyLevel: ptr(-1), Holdings: []models.HoldingRequest{one}}, 50, "safety_level"},
		{"safety above nine", models.AnalyzeRequest{SafetyLevel: ptr(10), Holdings: []models.HoldingRequest{one}}, 50, "safety_level"},
		{"no holdings", models.AnalyzeRequest{SafetyLevel: ptr(5)}, 50, "at least one holding"},
		{"over max", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{one, one, one}}, 2, "at most 2"},
		{"negative score", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{{StrengthScore: ptr(-1.0), InvestedAmount: ptr(1.0)}}}, 50, "strength_score"},
		{"negative amount", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{{StrengthScore: ptr(1.0), InvestedAmount: ptr(-1.0)}}}, 50, "invested_amount"},
		{"negative cash", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{one}, CashBalance: ptr(-5.0)}, 50, "cash_balance"},
		{"NaN score", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{{StrengthScore: ptr(math.NaN()), InvestedAmount: ptr(1.0)}}}, 50, "strength_score must be a finite number"},
		{"infinite amount", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{{StrengthScore: ptr(1.0), InvestedAmount: ptr(math.Inf(1))}}}, 50, "invested_amount must be a finite number"},
		{"negative infinite amount", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{{StrengthScore: ptr(1.0), InvestedAmount: ptr(math.Inf(-1))}}}, 50, "invested_amount must be a finite number"},
		{"infinite cash", models.AnalyzeRequest{SafetyLevel: ptr(5), Holdings: []models.HoldingRequest{one}, CashBalance: ptr(math.Inf(1))}, 50, "cash_balance must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToInput(tt.max)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrOutOfRange), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAnalysisResult_MarshalEmptyArrays(t *testing.T) {
	data, err := json.Marshal(models.AnalysisResult{RecommendedAction: models.ActionHold})
	require.NoError(t, err)

	body := string(data)
	assert.True(t, strings.Contains(body, `"per_holding_weights":[]`), body)
	assert.True(t, strings.Contains(body, `"weak_holdings":[]`), body)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Holding 3", models.Label(2))
	assert.Equal(t, "Holding 1", models.WeakHolding{Index: 1, StrengthScore: 10}.Label())
}
