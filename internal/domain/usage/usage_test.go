package usage

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"": PeriodDay, "day": PeriodDay, "month": PeriodMonth} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePeriod("total"); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestBounds(t *testing.T) {
	at := time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)

	start, end := PeriodDay.Bounds(at)
	if !start.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) || !end.Equal(start.Add(24*time.Hour)) {
		t.Errorf("day bounds: %v - %v", start, end)
	}

	start, end = PeriodMonth.Bounds(at)
	if !start.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) ||
		!end.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month bounds: %v - %v", start, end)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name          string
		limit, used   int64
		wantRemaining int64
		wantExhausted bool
	}{
		{"unlimited", 0, 500, -1, false},
		{"within", 100, 30, 70, false},
		{"at cap", 100, 100, 0, true},
		{"over cap", 100, 140, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport(PeriodDay, "eu", time.Time{}, time.Time{}, tt.limit, tt.used)
			if r.Remaining() != tt.wantRemaining {
				t.Errorf("Remaining() = %d, want %d", r.Remaining(), tt.wantRemaining)
			}
			if r.Exhausted() != tt.wantExhausted {
				t.Errorf("Exhausted() = %v, want %v", r.Exhausted(), tt.wantExhausted)
			}
		})
	}
}
