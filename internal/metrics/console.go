package metrics

import "github.com/prometheus/client_golang/prometheus"

// Console Prometheus metrics.
var (
	DialogOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "dialog_outcomes_total",
			Help:      "Dialog prompts by variant and how they ended",
		},
		[]string{"variant", "outcome"}, // accepted / canceled / dismissed / superseded
	)

	SearchFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "search_fetches_total",
			Help:      "Search fetches by outcome",
		},
		[]string{"status"}, // ok / error / stale
	)

	SearchFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "console",
			Name:      "search_fetch_duration_seconds",
			Help:      "Search fetch duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchBudgetRemaining = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "console",
			Name:      "search_budget_remaining",
			Help:      "Search commands left in the budget window, -1 if unlimited",
		},
		[]string{"period"}, // day / month
	)

	OpenSurfaces = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "console",
			Name:      "open_surfaces",
			Help:      "Search surfaces currently open",
		},
	)
)

var consoleMetricsRegistered bool

// RegisterConsoleMetrics registers console Prometheus metrics. Must be called once from main.
func RegisterConsoleMetrics() {
	if consoleMetricsRegistered {
		return
	}
	prometheus.MustRegister(DialogOutcomesTotal)
	prometheus.MustRegister(SearchFetchesTotal)
	prometheus.MustRegister(SearchFetchDuration)
	prometheus.MustRegister(ResultCacheTotal)
	prometheus.MustRegister(SearchBudgetRemaining)
	prometheus.MustRegister(OpenSurfaces)
	consoleMetricsRegistered = true
}
