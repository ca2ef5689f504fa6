package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
	"github.com/kailas-cloud/vecdex-console/internal/domain/usage"
)

// Fetcher runs a search request against the cluster.
type Fetcher interface {
	Fetch(ctx context.Context, req request.Request) (result.Page, error)
}

// Checker is the budget the guard enforces.
type Checker interface {
	Check(ctx context.Context) error
	Record(n int64)
	Report(period usage.Period) usage.Report
}

// GuardedFetcher wraps a Fetcher with budget enforcement. Only requests that
// reach the cluster count, so it belongs below the result cache.
type GuardedFetcher struct {
	inner     Fetcher
	budget    Checker
	remaining *prometheus.GaugeVec // nil disables the gauge
	logger    *zap.Logger
}

// NewGuardedFetcher wraps inner with budget.
func NewGuardedFetcher(
	inner Fetcher, budget Checker, remaining *prometheus.GaugeVec, logger *zap.Logger,
) *GuardedFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardedFetcher{inner: inner, budget: budget, remaining: remaining, logger: logger}
}

// Fetch checks the budget, delegates, and records the commands a successful
// fetch issued: one FT.SEARCH plus one FT.AGGREGATE per facet field.
func (g *GuardedFetcher) Fetch(ctx context.Context, req request.Request) (result.Page, error) {
	if err := g.budget.Check(ctx); err != nil {
		g.logger.Warn("Search rejected by budget",
			zap.String("collection", req.Collection()),
			zap.Error(err),
		)
		return result.Page{}, fmt.Errorf("budget check: %w", err)
	}

	start := time.Now()
	page, err := g.inner.Fetch(ctx, req)
	if err != nil {
		return result.Page{}, err
	}

	commands := int64(1 + len(req.Params().FacetBy))
	g.budget.Record(commands)
	g.observe()

	g.logger.Debug("Search counted against budget",
		zap.String("collection", req.Collection()),
		zap.Int64("commands", commands),
		zap.Duration("duration", time.Since(start)),
	)
	return page, nil
}

func (g *GuardedFetcher) observe() {
	if g.remaining == nil {
		return
	}
	for _, period := range []usage.Period{usage.PeriodDay, usage.PeriodMonth} {
		g.remaining.WithLabelValues(string(period)).Set(float64(g.budget.Report(period).Remaining()))
	}
}
