package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
)

// GetDocument handles GET /collections/{collection}/documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, collection gen.CollectionName, id gen.DocumentId) {
	doc, err := s.documents.Get(r.Context(), collection, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToGen(doc))
}

// EditDocument handles POST /collections/{collection}/documents/{id}/edit.
// The response carries the editor dialog; the document changes on submit.
func (s *Server) EditDocument(w http.ResponseWriter, r *http.Request, collection gen.CollectionName, id gen.DocumentId) {
	future, err := s.documents.RequestEdit(r.Context(), collection, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.settled("edit document "+collection+"/"+id, future)
	writeJSON(w, http.StatusAccepted, s.dialogState())
}

// DeleteDocument handles DELETE /collections/{collection}/documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request, collection gen.CollectionName, id gen.DocumentId) {
	future, err := s.documents.RequestDelete(r.Context(), collection, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.settled("delete document "+collection+"/"+id, future)
	writeJSON(w, http.StatusAccepted, s.dialogState())
}
