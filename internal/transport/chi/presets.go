package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
)

// ListPresets handles GET /presets.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.presets.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]gen.Preset, len(presets))
	for i, p := range presets {
		items[i] = presetToGen(p)
	}
	writeJSON(w, http.StatusOK, gen.PresetListResponse{Items: items})
}

// SavePreset handles PUT /presets/{name}: the parameters of the given surface
// are stored under name, which becomes that surface's active preset.
func (s *Server) SavePreset(w http.ResponseWriter, r *http.Request, name gen.PresetName) {
	var req gen.SavePresetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	surface, err := s.surfaces.Get(req.SurfaceId)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	p, err := s.presets.Save(r.Context(), surface.Store(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presetToGen(p))
}

// DeletePreset handles DELETE /presets/{name}.
func (s *Server) DeletePreset(w http.ResponseWriter, r *http.Request, name gen.PresetName) {
	if err := s.presets.Delete(r.Context(), name); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
