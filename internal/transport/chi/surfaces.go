package chi

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/facet"
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	logpkg "github.com/kailas-cloud/vecdex-console/internal/logger"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/presetsync"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
)

// OpenSurface handles POST /surfaces. The collection must exist; its text
// fields become the default query_by unless a preset sets one.
func (s *Server) OpenSurface(w http.ResponseWriter, r *http.Request) {
	var req gen.OpenSurfaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Collection == "" {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, "Collection name is required")
		return
	}

	col, err := s.collections.Get(r.Context(), req.Collection)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	var props slot.PropsSet[query.SlotKey]
	if req.SlotProps != nil {
		props = propsFromGen[query.SlotKey](*req.SlotProps)
	}
	surface, err := s.surfaces.Open(req.Collection, slotOverrides(req.Slots), props)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if err := s.initSurface(r, surface, req, col.SearchFields()); err != nil {
		if closeErr := s.surfaces.Close(surface.ID()); closeErr != nil {
			logpkg.FromContext(r.Context(), s.logger).Warn("Failed to close surface", zap.String("surface_id", surface.ID()), zap.Error(closeErr))
		}
		s.handleInputError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, surfaceToGen(surface))
}

func (s *Server) initSurface(r *http.Request, surface *query.Surface, req gen.OpenSurfaceRequest, searchFields []string) error {
	store := surface.Store()
	if name := derefString(req.Preset); name != "" {
		if err := s.presets.Select(r.Context(), store, name); err != nil {
			return fmt.Errorf("select preset: %w", err)
		}
	}
	if err := presetsync.EnsureQueryBy(store, searchFields); err != nil {
		return fmt.Errorf("default query_by: %w", err)
	}
	if text := derefString(req.Query); text != "" {
		if err := store.SetQuery(text); err != nil {
			return fmt.Errorf("set query: %w", err)
		}
		store.Flush()
	}
	return nil
}

// surface resolves id or writes the error.
func (s *Server) surface(w http.ResponseWriter, id gen.SurfaceId) (*query.Surface, bool) {
	surface, err := s.surfaces.Get(id)
	if err != nil {
		s.handleDomainError(w, err)
		return nil, false
	}
	return surface, true
}

// GetSurface handles GET /surfaces/{id}.
func (s *Server) GetSurface(w http.ResponseWriter, _ *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, surfaceToGen(surface))
}

// CloseSurface handles DELETE /surfaces/{id}.
func (s *Server) CloseSurface(w http.ResponseWriter, _ *http.Request, id gen.SurfaceId) {
	if err := s.surfaces.Close(id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSurfaceQuery handles PUT /surfaces/{id}/query. The text is debounced
// unless flush is set.
func (s *Server) SetSurfaceQuery(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.SetQueryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := surface.Store().SetQuery(req.Query); err != nil {
		s.handleInputError(w, err)
		return
	}
	if req.Flush != nil && *req.Flush {
		surface.Store().Flush()
	}
	writeJSON(w, http.StatusOK, surfaceToGen(surface))
}

// PatchSurfaceParams handles PATCH /surfaces/{id}/params.
func (s *Server) PatchSurfaceParams(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.SearchParamsPatch
	if !decodeBody(w, r, &req) {
		return
	}
	s.applySurface(w, surface, surface.Store().SetParams(patchFromGen(req)))
}

// ToggleSurfaceFacet handles POST /surfaces/{id}/facets.
func (s *Server) ToggleSurfaceFacet(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.ToggleFacetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var op facet.Operator
	if req.Op != nil {
		op = facet.Operator(*req.Op)
	}
	err := surface.Store().ToggleFacet(req.Field, req.Value, op, req.Checked)
	s.applySurface(w, surface, err)
}

// SetSurfaceSort handles PUT /surfaces/{id}/sort.
func (s *Server) SetSurfaceSort(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.SortRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.applySurface(w, surface, surface.Store().SetSortBy(req.SortBy))
}

// SetSurfacePage handles PUT /surfaces/{id}/page.
func (s *Server) SetSurfacePage(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.PageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.applySurface(w, surface, surface.Store().SetPage(req.Page))
}

// RefreshSurface handles POST /surfaces/{id}/refresh.
func (s *Server) RefreshSurface(w http.ResponseWriter, _ *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	s.applySurface(w, surface, surface.Store().Refresh())
}

// PatchSurfaceSlotProps handles PATCH /surfaces/{id}/slot-props.
func (s *Server) PatchSurfaceSlotProps(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.PatchSurfaceSlotPropsJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if err := surface.UpdateSlotProps(propsFromGen[query.SlotKey](req.Props)); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surfaceToGen(surface))
}

// GetSurfaceView handles GET /surfaces/{id}/view.
func (s *Server) GetSurfaceView(w http.ResponseWriter, _ *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, surface.Render())
}

// SelectSurfacePreset handles POST /surfaces/{id}/preset.
func (s *Server) SelectSurfacePreset(w http.ResponseWriter, r *http.Request, id gen.SurfaceId) {
	surface, ok := s.surface(w, id)
	if !ok {
		return
	}
	var req gen.SelectPresetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.presets.Select(r.Context(), surface.Store(), req.Name); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surfaceToGen(surface))
}

func (s *Server) applySurface(w http.ResponseWriter, surface *query.Surface, err error) {
	if err != nil {
		s.handleInputError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surfaceToGen(surface))
}
