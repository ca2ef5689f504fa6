package chi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	collectionuc "github.com/kailas-cloud/vecdex-console/internal/usecase/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
	documentuc "github.com/kailas-cloud/vecdex-console/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vecdex-console/internal/usecase/health"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/presetsync"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
	usageuc "github.com/kailas-cloud/vecdex-console/internal/usecase/usage"
)

// Server exposes the console over HTTP: collections and their documents, the
// process-wide dialog, search surfaces, presets and the search budget.
type Server struct {
	gen.Unimplemented

	collections   *collectionuc.Service
	documents     *documentuc.Service
	dialogs       *dialog.Controller
	surfaces      *query.Surfaces
	presets       *presetsync.Service
	health        *healthuc.Service
	usage         *usageuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
	// settled observes prompt futures started by HTTP calls. Tests replace it.
	settled func(name string, f *dialog.Future)
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	collections *collectionuc.Service,
	documents *documentuc.Service,
	dialogs *dialog.Controller,
	surfaces *query.Surfaces,
	presets *presetsync.Service,
	health *healthuc.Service,
	usage *usageuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		collections:   collections,
		documents:     documents,
		dialogs:       dialogs,
		surfaces:      surfaces,
		presets:       presets,
		health:        health,
		usage:         usage,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
	s.settled = s.logSettled
	return s
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	status := gen.HealthResponseStatus(report.Status)
	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: status,
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// logSettled waits for a prompt started over HTTP and logs how it ended.
// Futures always settle, so the goroutine never outlives its session.
func (s *Server) logSettled(name string, f *dialog.Future) {
	go func() {
		_, err := f.Await(context.Background())
		switch {
		case err != nil:
			s.logger.Info("Prompt rejected", zap.String("prompt", name), zap.Error(err))
		case f.Dismissed():
			s.logger.Info("Prompt dismissed", zap.String("prompt", name))
		default:
			s.logger.Info("Prompt accepted", zap.String("prompt", name))
		}
	}()
}
