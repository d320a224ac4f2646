package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/epeers/rsiv/internal/cache"
	"github.com/epeers/rsiv/internal/handlers"
	"github.com/epeers/rsiv/internal/models"
	"github.com/epeers/rsiv/internal/services"
	"github.com/gin-gonic/gin"
)

const testMaxHoldings = 5

func setupTestRouter(t *testing.T) (*gin.Engine, *cache.MemoryCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	results := cache.NewMemoryCache(time.Minute)
	analyzer := services.NewAnalyzerService()
	analysisHandler := handlers.NewAnalysisHandler(analyzer, services.NewBatchService(analyzer, 2), results, testMaxHoldings)
	reportHandler := handlers.NewReportHandler(results, "vi", "VND")
	formHandler := handlers.NewFormHandler(analysisHandler, "vi", "VND")

	router := gin.New()
	router.GET("/", formHandler.Form)
	router.POST("/report", formHandler.Submit)
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/analyze/batch", analysisHandler.AnalyzeBatch)
	router.POST("/analyze/csv", analysisHandler.AnalyzeCSV)
	router.GET("/analyses/:id", analysisHandler.Get)
	router.DELETE("/analyses/:id", analysisHandler.Delete)
	router.GET("/analyses/:id/report", reportHandler.Report)
	router.GET("/analyses/:id/export/:format", reportHandler.Export)

	return router, results
}

func postJSON(t *testing.T, router *gin.Engine, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// buildMultipartRequest builds a multipart/form-data request with the given form
// fields and, when csvContent is set, a file part named "holdings".
func buildMultipartRequest(t *testing.T, url string, fields map[string]string, csvContent string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("failed to write %s field: %v", name, err)
		}
	}

	if csvContent != "" {
		part, err := writer.CreateFormFile("holdings", "holdings.csv")
		if err != nil {
			t.Fatalf("failed to create holdings file part: %v", err)
		}
		if _, err := part.Write([]byte(csvContent)); err != nil {
			t.Fatalf("failed to write CSV content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeAnalysis(t *testing.T, w *httptest.ResponseRecorder) models.AnalysisResponse {
	t.Helper()
	var resp models.AnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}
	return resp
}

func hasWarning(warnings []models.Warning, code models.WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// analyzeSample posts the single-holding portfolio used across report tests and returns its id
func analyzeSample(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := postJSON(t, router, "/analyze", `{"safety_level":9,"holdings":[{"strength_score":60,"invested_amount":500000}],"cash_balance":500000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	return decodeAnalysis(t, w).ID
}
