package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeNotFound),
		sentinelHandler(query.ErrClosed, http.StatusNotFound, gen.ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, gen.ErrorResponseCodeAlreadyExists),
		sentinelHandler(domain.ErrInvalidName, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidParams, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrInvalidDocument, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(params.ErrUnknownParam, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(slot.ErrUnknownSlot, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(slot.ErrMissingSlot, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(dialog.ErrInvalidVariant, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrLimitReached, http.StatusTooManyRequests, gen.ErrorResponseCodeLimitReached),
		sentinelHandler(dialog.ErrIdle, http.StatusConflict, gen.ErrorResponseCodeDialogConflict),
		sentinelHandler(dialog.ErrStaleSession, http.StatusConflict, gen.ErrorResponseCodeDialogConflict),
		sentinelHandler(dialog.ErrSubmitDisabled, http.StatusConflict, gen.ErrorResponseCodeDialogConflict),
		sentinelHandler(domain.ErrBackendUnavailable, http.StatusServiceUnavailable, gen.ErrorResponseCodeBackendUnavailable),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		query.ErrClosed,
		domain.ErrAlreadyExists,
		domain.ErrLimitReached,
		domain.ErrBackendUnavailable,
		dialog.ErrIdle,
		dialog.ErrStaleSession,
		dialog.ErrSubmitDisabled,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	// Validation errors carry the offending input, which the caller sent.
	validation := []error{
		domain.ErrInvalidName,
		domain.ErrInvalidParams,
		domain.ErrInvalidDocument,
		params.ErrUnknownParam,
		slot.ErrUnknownSlot,
		slot.ErrMissingSlot,
		dialog.ErrInvalidVariant,
	}
	for _, s := range validation {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

// handleInputError reports err as a validation failure unless it matches a
// known sentinel. Used where the use case rejects caller input without one.
func (s *Server) handleInputError(w http.ResponseWriter, err error) {
	for _, sentinel := range []error{query.ErrClosed, domain.ErrNotFound} {
		if errors.Is(err, sentinel) {
			s.handleDomainError(w, err)
			return
		}
	}
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, err.Error())
}
