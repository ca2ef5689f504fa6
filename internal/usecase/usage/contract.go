package usage

import domusage "github.com/kailas-cloud/vecdex-console/internal/domain/usage"

// Reporter provides read-only access to the search budget.
type Reporter interface {
	Report(period domusage.Period) domusage.Report
}
