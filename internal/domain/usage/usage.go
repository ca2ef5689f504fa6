// Package usage describes how much of the search budget the console spent.
package usage

import (
	"fmt"
	"time"
)

// Period is the accounting window of a budget.
type Period string

// Accounting windows.
const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period name. Empty means PeriodDay.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "", PeriodDay:
		return PeriodDay, nil
	case PeriodMonth:
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("unknown period %q (want day or month)", s)
	}
}

// Bounds returns the UTC window of p containing t.
func (p Period) Bounds(t time.Time) (start, end time.Time) {
	t = t.UTC()
	if p == PeriodMonth {
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Report is the search query usage of the cluster for one period.
// A zero limit means the period is unlimited.
type Report struct {
	period  Period
	cluster string
	start   time.Time
	end     time.Time
	limit   int64
	used    int64
}

// NewReport creates a usage report.
func NewReport(period Period, cluster string, start, end time.Time, limit, used int64) Report {
	return Report{
		period:  period,
		cluster: cluster,
		start:   start,
		end:     end,
		limit:   limit,
		used:    used,
	}
}

// Period returns the accounting window.
func (r Report) Period() Period { return r.period }

// Cluster returns the cluster the queries ran against.
func (r Report) Cluster() string { return r.cluster }

// Start returns the beginning of the window.
func (r Report) Start() time.Time { return r.start }

// End returns when the window resets.
func (r Report) End() time.Time { return r.end }

// Limit returns the query cap, 0 if unlimited.
func (r Report) Limit() int64 { return r.limit }

// Used returns the queries issued in the window.
func (r Report) Used() int64 { return r.used }

// Remaining returns queries left, or -1 if unlimited.
func (r Report) Remaining() int64 {
	if r.limit == 0 {
		return -1
	}
	return max(r.limit-r.used, 0)
}

// Exhausted reports whether the cap is reached.
func (r Report) Exhausted() bool {
	return r.limit > 0 && r.used >= r.limit
}
