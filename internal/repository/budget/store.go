// Package budget persists search budget counters as expiring Redis integers.
//
// Key layout: {prefix}budget:{cluster}:{period}:{window}, e.g.
// console:budget:eu-1:day:2026-10-18.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain/usage"
)

// Counters outlive their window so a late reader still sees the final value.
const (
	dayTTL   = 48 * time.Hour
	monthTTL = 62 * 24 * time.Hour
)

// store is the consumer interface for budget counters (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Store implements usecase/budget.CounterStore.
type Store struct {
	store  store
	prefix string
}

// New creates a budget counter store.
func New(s store, prefix string) *Store {
	return &Store{store: s, prefix: prefix}
}

// Add increments the counter of the window containing at and returns its new value.
func (s *Store) Add(ctx context.Context, cluster string, period usage.Period, at time.Time, n int64) (int64, error) {
	key := s.key(cluster, period, at)
	total, err := s.store.IncrBy(ctx, key, n)
	if err != nil {
		return 0, fmt.Errorf("budget incr %s: %w", key, err)
	}
	if err := s.store.Expire(ctx, key, ttlFor(period), true); err != nil {
		return 0, fmt.Errorf("budget expire %s: %w", key, err)
	}
	return total, nil
}

// Load returns the counter of the window containing at, 0 if never written.
func (s *Store) Load(ctx context.Context, cluster string, period usage.Period, at time.Time) (int64, error) {
	key := s.key(cluster, period, at)
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("budget get %s: %w", key, err)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("budget parse %s: %w", key, err)
	}
	return n, nil
}

func (s *Store) key(cluster string, period usage.Period, at time.Time) string {
	layout := "2006-01-02"
	if period == usage.PeriodMonth {
		layout = "2006-01"
	}
	return fmt.Sprintf("%sbudget:%s:%s:%s", s.prefix, cluster, period, at.UTC().Format(layout))
}

func ttlFor(period usage.Period) time.Duration {
	if period == usage.PeriodMonth {
		return monthTTL
	}
	return dayTTL
}
