package query

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
)

// --- Mocks ---

type mockFetcher struct {
	mu    sync.Mutex
	calls []request.Request
	fn    func(ctx context.Context, req request.Request) (result.Page, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, req request.Request) (result.Page, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	fn := m.fn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, req)
	}
	return result.Page{Found: 1, Page: 1, PerPage: 20, Hits: []result.Hit{{ID: "doc-" + req.Query()}}}, nil
}

func (m *mockFetcher) Calls() []request.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]request.Request(nil), m.calls...)
}

// fakeClock runs scheduled functions only when fired.
type fakeClock struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (c *fakeClock) schedule(_ time.Duration, f func()) func() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{f: f}
	c.pending = append(c.pending, t)
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		was := !t.stopped
		t.stopped = true
		return was
	}
}

// fire runs every pending, unstopped timer.
func (c *fakeClock) fire() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, t := range pending {
		c.mu.Lock()
		run := !t.stopped
		t.stopped = true
		c.mu.Unlock()
		if run {
			t.f()
		}
	}
}

func newImmediateStore(t *testing.T, f *mockFetcher, opts ...Option) *Store {
	t.Helper()
	s := New("main", "products", f, append([]Option{WithDebounce(0)}, opts...)...)
	t.Cleanup(s.Close)
	return s
}

func newDebouncedStore(t *testing.T, f *mockFetcher) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	s := New("main", "products", f, WithDebounce(200*time.Millisecond), withScheduler(clock.schedule))
	t.Cleanup(s.Close)
	return s, clock
}

// dataUpdates streams snapshots that carry data.
func dataUpdates(s *Store) <-chan Snapshot {
	ch := make(chan Snapshot, 16)
	s.OnChange(func(snap Snapshot) {
		if snap.Result.Data != nil && !snap.Result.Loading {
			select {
			case ch <- snap:
			default:
			}
		}
	})
	return ch
}

func awaitSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for store update")
		return Snapshot{}
	}
}

func paramsWithFilter(expr string) params.Params {
	return params.Params{FilterBy: expr}
}
