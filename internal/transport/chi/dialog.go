package chi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/vecdex-console/internal/logger"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
)

func (s *Server) dialogState() gen.DialogResponse {
	resp := gen.DialogResponse{State: s.dialogs.State()}
	if node, ok := s.dialogs.Render(); ok {
		resp.View = &node
	}
	return resp
}

// GetDialog handles GET /dialog.
func (s *Server) GetDialog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dialogState())
}

// EditDialog handles PUT /dialog/value: the operator changed the editor content.
func (s *Server) EditDialog(w http.ResponseWriter, r *http.Request) {
	var req gen.DialogValueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.dialogs.Edit(req.SessionId, dialogValue(req)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dialogState())
}

// SubmitDialog handles POST /dialog/submit. A failed submit callback leaves the
// dialog open; the response then carries the dialog with its error shown.
func (s *Server) SubmitDialog(w http.ResponseWriter, r *http.Request) {
	var req gen.DialogValueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := s.dialogs.Submit(r.Context(), req.SessionId, dialogValue(req))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s.dialogState())
	case isControlError(err):
		s.handleDomainError(w, err)
	default:
		logpkg.FromContext(r.Context(), s.logger).Warn("Dialog submit failed", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, s.dialogState())
	}
}

// CancelDialog handles POST /dialog/cancel.
func (s *Server) CancelDialog(w http.ResponseWriter, r *http.Request) {
	var req gen.DialogSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.dialogs.Cancel(req.SessionId); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dialogState())
}

// SetDialogDisabled handles POST /dialog/disabled.
func (s *Server) SetDialogDisabled(w http.ResponseWriter, r *http.Request) {
	var req gen.DialogDisabledRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.dialogs.SetDisabled(req.Disabled)
	writeJSON(w, http.StatusOK, s.dialogState())
}

// PatchDialogSlotProps handles PATCH /dialog/slot-props.
func (s *Server) PatchDialogSlotProps(w http.ResponseWriter, r *http.Request) {
	var req gen.PatchDialogSlotPropsJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.dialogs.UpdateSlotProps(propsFromGen[dialog.SlotKey](req.Props)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dialogState())
}

// dialogValue returns the submitted value, nil when the request carries none.
func dialogValue(req gen.DialogValueRequest) any {
	if req.Value == nil {
		return nil
	}
	return *req.Value
}

// isControlError reports errors raised by the controller itself rather than
// by the submit callback.
func isControlError(err error) bool {
	return errors.Is(err, dialog.ErrIdle) ||
		errors.Is(err, dialog.ErrStaleSession) ||
		errors.Is(err, dialog.ErrSubmitDisabled)
}
