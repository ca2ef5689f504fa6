package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

// DefaultDebounce is the quiet period before typed text becomes the fetch query.
const DefaultDebounce = 200 * time.Millisecond

// DefaultFetchTimeout bounds a single fetch.
const DefaultFetchTimeout = 5 * time.Second

// scheduleFunc runs f after d and returns a stop function.
type scheduleFunc func(d time.Duration, f func()) (stop func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce sets the query debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithFetchTimeout bounds every fetch; zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Store) { s.fetchTimeout = d }
}

// WithParams sets the initial parameters.
func WithParams(p params.Params) Option {
	return func(s *Store) { s.params = p.Clone() }
}

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the fetch counter (label: status) and duration histogram.
func WithMetrics(fetches *prometheus.CounterVec, duration prometheus.Observer) Option {
	return func(s *Store) {
		s.fetches = fetches
		s.duration = duration
	}
}

func withScheduler(fn scheduleFunc) Option {
	return func(s *Store) { s.schedule = fn }
}
