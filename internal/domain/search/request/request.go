// Package request defines the unit of retrieval: which collection of which
// cluster is searched, with what text and structured parameters.
package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/mode"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	MaxPerPage     = params.MaxPerPage
)

// Request is one fetch. Two requests with the same Key return the same page.
type Request struct {
	cluster    string
	collection string
	query      string
	params     params.Params
}

// New validates a request. The query is trimmed; it must not be empty since an
// empty query never reaches the backend.
func New(cluster, collection, query string, p params.Params) (Request, error) {
	if collection == "" {
		return Request{}, fmt.Errorf("collection is required")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if p.PerPage > MaxPerPage {
		return Request{}, fmt.Errorf("per_page too large (max %d)", MaxPerPage)
	}
	return Request{cluster: cluster, collection: collection, query: query, params: p.Clone()}, nil
}

// Cluster returns the cluster name.
func (r Request) Cluster() string { return r.cluster }

// Collection returns the collection name.
func (r Request) Collection() string { return r.collection }

// Query returns the trimmed query text.
func (r Request) Query() string { return r.query }

// Mode returns how the query text is matched.
func (r Request) Mode() mode.Mode { return mode.Of(r.query) }

// Params returns a copy of the structured parameters.
func (r Request) Params() params.Params { return r.params.Clone() }

// Offset returns the zero-based index of the first hit of the page.
func (r Request) Offset() int {
	return (r.params.EffectivePage() - 1) * r.params.EffectivePerPage()
}

// Key identifies the request for deduplication and caching.
func (r Request) Key() string {
	return r.cluster + "\x1f" + r.collection + "\x1f" + r.params.Canonical() + "\x1f" + r.query
}

// Equal reports whether r and o fetch the same page.
func (r Request) Equal(o Request) bool {
	return r.Key() == o.Key()
}
