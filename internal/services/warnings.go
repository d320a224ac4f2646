package services

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/epeers/rsiv/internal/models"
)

type warningsKey struct{}

// WarningCollector gathers the advisories raised for one analysis. Each code
// is kept once with the first message raised for it, and warnings come back
// ordered by code so concurrent analyses report them identically.
type WarningCollector struct {
	mu     sync.Mutex
	byCode map[models.WarningCode]models.Warning
}

// NewWarningContext attaches an empty collector to ctx and returns both.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{byCode: make(map[models.WarningCode]models.Warning)}
	return context.WithValue(ctx, warningsKey{}, wc), wc
}

func collectorFrom(ctx context.Context) *WarningCollector {
	wc, _ := ctx.Value(warningsKey{}).(*WarningCollector)
	return wc
}

// AddWarning records w on the collector carried by ctx, if any.
func AddWarning(ctx context.Context, w models.Warning) {
	if wc := collectorFrom(ctx); wc != nil {
		wc.Add(w)
	}
}

// Add records w unless a warning with the same code is already present.
// It reports whether w was recorded.
func (wc *WarningCollector) Add(w models.Warning) bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if _, dup := wc.byCode[w.Code]; dup {
		return false
	}
	wc.byCode[w.Code] = w
	return true
}

// GetWarnings returns the recorded warnings sorted by code, nil when there are none.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.byCode) == 0 {
		return nil
	}
	out := make([]models.Warning, 0, len(wc.byCode))
	for _, w := range wc.byCode {
		out = append(out, w)
	}
	slices.SortFunc(out, func(a, b models.Warning) int { return cmp.Compare(a.Code, b.Code) })
	return out
}

func (wc *WarningCollector) HasWarning(code models.WarningCode) bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	_, ok := wc.byCode[code]
	return ok
}
