package resultcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
)

type mockFetcher struct {
	page  result.Page
	err   error
	calls int
}

func (m *mockFetcher) Fetch(_ context.Context, _ request.Request) (result.Page, error) {
	m.calls++
	return m.page, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedFetcher(t *testing.T, inner *mockFetcher) (*CachedFetcher, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	cf := New(inner, ms, "console:", time.Minute, nil, zap.NewNop())
	return cf, ms
}

func testRequest(t *testing.T, query string) request.Request {
	t.Helper()
	r, err := request.New("main", "products", query, params.Params{})
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return r
}
