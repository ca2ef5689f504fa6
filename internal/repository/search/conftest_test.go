package search

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn    func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	aggregateFn func(ctx context.Context, q *db.FacetQuery) ([]db.FacetBucket, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) Aggregate(ctx context.Context, q *db.FacetQuery) ([]db.FacetBucket, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, q)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, domain.Keys{Prefix: "vecdex:"}, 10)
	tick := time.Unix(0, 0)
	repo.now = func() time.Time {
		tick = tick.Add(7 * time.Millisecond)
		return tick
	}
	return repo, ms
}

func mustRequest(t *testing.T, query string, p params.Params) request.Request {
	t.Helper()
	r, err := request.New("main", "products", query, p)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return r
}
