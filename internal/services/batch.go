package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/rsiv/internal/models"
	"golang.org/x/sync/errgroup"
)

// BatchService analyzes several independent portfolios concurrently
type BatchService struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchService creates a new BatchService. concurrency <= 0 means no limit.
func NewBatchService(analyzer Analyzer, concurrency int) *BatchService {
	return &BatchService{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// BatchResult is the analysis of one portfolio of a batch along with its own warnings
type BatchResult struct {
	Result   *models.AnalysisResult
	Warnings []models.Warning
}

// AnalyzeBatch returns one result per input, in input order.
// If any input fails the whole batch fails and the error names the failing index.
func (s *BatchService) AnalyzeBatch(ctx context.Context, inputs []models.PortfolioInput) ([]BatchResult, error) {
	defer TrackTime("AnalyzeBatch", time.Now())

	results := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			wctx, wc := NewWarningContext(gctx)
			result, err := s.analyzer.Analyze(wctx, input)
			if err != nil {
				return fmt.Errorf("portfolio[%d]: %w", i, err)
			}
			results[i] = BatchResult{Result: result, Warnings: wc.GetWarnings()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
