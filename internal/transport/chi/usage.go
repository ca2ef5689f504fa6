package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
)

// GetUsage handles GET /usage. The day window is reported by default.
func (s *Server) GetUsage(w http.ResponseWriter, r *http.Request, params gen.GetUsageParams) {
	var period string
	if params.Period != nil {
		period = string(*params.Period)
	}

	report, err := s.usage.GetReport(r.Context(), period)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usageToGen(report))
}
