package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
)

// ListCollections handles GET /collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]gen.Collection, len(cols))
	for i, c := range cols {
		items[i] = collectionToGen(c)
	}
	writeJSON(w, http.StatusOK, gen.CollectionListResponse{Items: items})
}

// GetCollection handles GET /collections/{collection}.
func (s *Server) GetCollection(w http.ResponseWriter, r *http.Request, collection gen.CollectionName) {
	col, err := s.collections.Get(r.Context(), collection)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collectionToGen(col))
}

// DeleteCollection handles DELETE /collections/{collection}. Nothing is removed
// yet: the response carries the confirmation dialog the operator must submit.
func (s *Server) DeleteCollection(w http.ResponseWriter, r *http.Request, collection gen.CollectionName) {
	future, err := s.collections.RequestDelete(r.Context(), collection)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.settled("delete collection "+collection, future)
	writeJSON(w, http.StatusAccepted, s.dialogState())
}
