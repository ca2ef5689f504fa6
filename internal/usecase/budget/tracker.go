// Package budget caps how many search commands the console sends to the
// cluster per day and per month.
package budget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/usage"
)

// Action defines behavior once a limit is reached.
type Action string

const (
	// ActionWarn logs a warning but lets the query through.
	ActionWarn Action = "warn"
	// ActionReject fails the query with domain.ErrLimitReached.
	ActionReject Action = "reject"
)

// persistTimeout bounds the write-behind of a recorded query.
const persistTimeout = 2 * time.Second

// CounterStore persists counters shared by every console replica.
type CounterStore interface {
	Add(ctx context.Context, cluster string, period usage.Period, at time.Time, n int64) (int64, error)
	Load(ctx context.Context, cluster string, period usage.Period, at time.Time) (int64, error)
}

// window is the counter of one period. A zero start rolls on first use.
type window struct {
	period usage.Period
	limit  int64
	used   int64
	start  time.Time
}

func (w *window) roll(now time.Time) {
	if start, _ := w.period.Bounds(now); start.After(w.start) {
		w.start = start
		w.used = 0
	}
}

func (w *window) exceeded() bool { return w.limit > 0 && w.used >= w.limit }

// Tracker counts search commands in memory. Check never leaves the process;
// Record writes behind to the store when one is attached and adopts the
// store's total, so replicas converge on the shared count.
type Tracker struct {
	mu      sync.Mutex
	cluster string
	action  Action
	day     window
	month   window
	store   CounterStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewTracker creates a tracker. A zero limit disables that period's cap.
func NewTracker(cluster string, dailyLimit, monthlyLimit int64, action Action, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		cluster: cluster,
		action:  action,
		day:     window{period: usage.PeriodDay, limit: dailyLimit},
		month:   window{period: usage.PeriodMonth, limit: monthlyLimit},
		logger:  logger,
		now:     time.Now,
	}
}

// WithStore attaches a counter store and loads the current counters.
func (t *Tracker) WithStore(ctx context.Context, store CounterStore) *Tracker {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store = store
	t.rollLocked()
	now := t.now()
	for _, w := range []*window{&t.day, &t.month} {
		n, err := store.Load(ctx, t.cluster, w.period, now)
		if err != nil {
			t.logger.Warn("Failed to load search budget",
				zap.String("period", string(w.period)),
				zap.Error(err),
			)
			continue
		}
		w.used = n
	}

	t.logger.Info("Search budget loaded",
		zap.String("cluster", t.cluster),
		zap.Int64("daily_used", t.day.used),
		zap.Int64("monthly_used", t.month.used),
	)
	return t
}

// Check reports whether a new query may run.
func (t *Tracker) Check(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollLocked()
	if !t.day.exceeded() && !t.month.exceeded() {
		return nil
	}

	if t.action == ActionReject {
		return fmt.Errorf("search budget of cluster %s: %w", t.cluster, domain.ErrLimitReached)
	}

	t.logger.Warn("Search budget exceeded",
		zap.String("cluster", t.cluster),
		zap.Int64("daily_used", t.day.used),
		zap.Int64("daily_limit", t.day.limit),
		zap.Int64("monthly_used", t.month.used),
		zap.Int64("monthly_limit", t.month.limit),
	)
	return nil
}

// Record adds n issued commands.
func (t *Tracker) Record(n int64) {
	t.mu.Lock()
	t.rollLocked()
	t.day.used += n
	t.month.used += n
	store := t.store
	now := t.now()
	t.mu.Unlock()

	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	for _, period := range []usage.Period{usage.PeriodDay, usage.PeriodMonth} {
		total, err := store.Add(ctx, t.cluster, period, now, n)
		if err != nil {
			t.logger.Warn("Failed to persist search budget",
				zap.String("period", string(period)),
				zap.Error(err),
			)
			continue
		}
		t.adopt(period, now, total)
	}
}

// adopt raises the local counter to the shared total if it is still the same window.
func (t *Tracker) adopt(period usage.Period, at time.Time, total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w := &t.day
	if period == usage.PeriodMonth {
		w = &t.month
	}
	if start, _ := period.Bounds(at); start.Equal(w.start) {
		w.used = max(w.used, total)
	}
}

// Report returns the usage of period.
func (t *Tracker) Report(period usage.Period) usage.Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollLocked()
	w := t.day
	if period == usage.PeriodMonth {
		w = t.month
	}
	start, end := w.period.Bounds(w.start)
	return usage.NewReport(w.period, t.cluster, start, end, w.limit, w.used)
}

func (t *Tracker) rollLocked() {
	now := t.now()
	t.day.roll(now)
	t.month.roll(now)
}
