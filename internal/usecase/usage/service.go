package usage

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domusage "github.com/kailas-cloud/vecdex-console/internal/domain/usage"
)

// Service handles usage reporting.
type Service struct {
	reporter Reporter
}

// New creates a Service.
func New(reporter Reporter) *Service {
	return &Service{reporter: reporter}
}

// GetReport returns the search usage for a period name ("day" by default).
func (s *Service) GetReport(_ context.Context, period string) (domusage.Report, error) {
	p, err := domusage.ParsePeriod(period)
	if err != nil {
		return domusage.Report{}, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	return s.reporter.Report(p), nil
}
