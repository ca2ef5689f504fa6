// Package query keeps the reactive search state of console search surfaces.
//
// A Store holds the typed query text, the structured parameters and the last
// result. Text is debounced before it takes part in the fetch key; parameter
// changes take part immediately. The fetch key is (cluster, collection,
// canonical params, debounced query):
//
//   - an empty debounced query never fetches and keeps the previous result;
//   - an unchanged key never refetches;
//   - only the response for the current key is applied, older responses are dropped;
//   - a failed fetch sets Result.Err and keeps Result.Data from the last success.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/facet"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
)

// Fetch outcome labels.
const (
	statusOK    = "ok"
	statusError = "error"
	statusStale = "stale"
)

// ErrClosed signals an operation on a closed store.
var ErrClosed = errors.New("query: store closed")

// Fetcher runs one search request.
type Fetcher interface {
	Fetch(ctx context.Context, req request.Request) (result.Page, error)
}

// Result is the retrieval state of a store.
type Result struct {
	Data    *result.Page `json:"data,omitempty"`
	Err     error        `json:"-"`
	Loading bool         `json:"loading"`
}

// Snapshot is a read-only copy of the store state.
type Snapshot struct {
	Cluster        string        `json:"cluster"`
	Collection     string        `json:"collection"`
	Query          string        `json:"query"`
	DebouncedQuery string        `json:"debounced_query"`
	Params         params.Params `json:"params"`
	Result         Result        `json:"result"`
	Error          string        `json:"error,omitempty"`
}

// Store is the search state of one surface. Safe for concurrent use.
type Store struct {
	cluster      string
	collection   string
	fetcher      Fetcher
	debounce     time.Duration
	fetchTimeout time.Duration
	schedule     scheduleFunc
	logger       *zap.Logger
	fetches      *prometheus.CounterVec
	duration     prometheus.Observer

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu        sync.Mutex
	query     string
	debounced string
	params    params.Params
	stopTimer func() bool
	key       string
	seq       uint64
	cancel    context.CancelFunc
	result    Result
	listeners map[int]func(Snapshot)
	nextID    int
	closed    bool
}

// New creates a store for collection on cluster.
func New(cluster, collection string, fetcher Fetcher, opts ...Option) *Store {
	ctx, stop := context.WithCancel(context.Background())
	s := &Store{
		cluster:      cluster,
		collection:   collection,
		fetcher:      fetcher,
		debounce:     DefaultDebounce,
		fetchTimeout: DefaultFetchTimeout,
		schedule:     afterFunc,
		logger:       zap.NewNop(),
		ctx:          ctx,
		stop:         stop,
		listeners:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns the typed (not yet debounced) query text.
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Params returns a copy of the current parameters.
func (s *Store) Params() params.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Clone()
}

// Result returns the current retrieval state.
func (s *Store) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// OnChange registers fn to run after every state change. The returned
// function unregisters it. fn runs outside the store lock.
func (s *Store) OnChange(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetQuery records typed text. It joins the fetch key once no further text
// arrives for the debounce delay.
func (s *Store) SetQuery(text string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.query = text
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	if s.debounce == 0 {
		s.debounced = text
		s.reconcileLocked()
		s.notify()
		return nil
	}
	s.stopTimer = s.schedule(s.debounce, func() { s.applyDebounced(text) })
	s.mu.Unlock()
	s.notifyUnlocked()
	return nil
}

// Flush applies pending typed text without waiting for the debounce delay.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.closed || s.stopTimer == nil {
		s.mu.Unlock()
		return
	}
	s.stopTimer()
	s.stopTimer = nil
	text := s.query
	s.mu.Unlock()
	s.applyDebounced(text)
}

func (s *Store) applyDebounced(text string) {
	s.mu.Lock()
	if s.closed || s.query != text {
		s.mu.Unlock()
		return
	}
	s.stopTimer = nil
	s.debounced = text
	s.reconcileLocked()
	s.notify()
}

// SetParams applies patch to the parameters.
func (s *Store) SetParams(patch params.Patch) error {
	return s.update(func(p params.Params) (params.Params, error) {
		return p.Apply(patch)
	})
}

// UpdateParams replaces the parameters with fn(current).
func (s *Store) UpdateParams(fn func(params.Params) params.Params) error {
	return s.update(func(p params.Params) (params.Params, error) {
		return fn(p), nil
	})
}

// ToggleFacet checks or unchecks a facet value and returns to the first page.
func (s *Store) ToggleFacet(field, value string, op facet.Operator, checked bool) error {
	if field == "" || value == "" {
		return fmt.Errorf("facet field and value are required")
	}
	if op != "" && !op.IsValid() {
		return fmt.Errorf("unsupported facet operator %q", op)
	}
	return s.UpdateParams(func(p params.Params) params.Params {
		return p.WithFilterBy(facet.Toggle(p.FilterBy, field, value, op, checked)).WithPage(0)
	})
}

// SetSortBy replaces sort_by; entries beyond params.MaxSortBy are dropped.
func (s *Store) SetSortBy(fields []string) error {
	return s.UpdateParams(func(p params.Params) params.Params {
		return p.WithSortBy(fields)
	})
}

// SetPage moves to page n (1-based).
func (s *Store) SetPage(n int) error {
	if n < 1 {
		return fmt.Errorf("page must be positive, got %d", n)
	}
	return s.UpdateParams(func(p params.Params) params.Params {
		return p.WithPage(n)
	})
}

// Refresh refetches the current key.
func (s *Store) Refresh() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.key = ""
	s.reconcileLocked()
	s.notify()
	return nil
}

// Wait blocks until no fetch is in flight.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close stops the debounce timer, cancels in-flight fetches and waits for them.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	s.listeners = map[int]func(Snapshot){}
	s.mu.Unlock()

	s.stop()
	s.wg.Wait()
}

func (s *Store) update(fn func(params.Params) (params.Params, error)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	next, err := fn(s.params)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.params = next.Clone()
	s.reconcileLocked()
	s.notify()
	return nil
}

// reconcileLocked starts a fetch when the key changed. Must hold s.mu.
func (s *Store) reconcileLocked() {
	q := strings.TrimSpace(s.debounced)
	if q == "" {
		// Gated: keep the previous result, drop whatever is in flight.
		s.key = ""
		s.cancelInflightLocked()
		return
	}

	req, err := request.New(s.cluster, s.collection, q, s.params)
	if err != nil {
		s.key = ""
		s.cancelInflightLocked()
		s.result.Err = err
		return
	}
	key := req.Key()
	if key == s.key {
		return
	}

	s.cancelInflightLocked()
	s.key = key
	s.seq++
	seq := s.seq

	var ctx context.Context
	var cancel context.CancelFunc
	if s.fetchTimeout > 0 {
		ctx, cancel = context.WithTimeout(s.ctx, s.fetchTimeout)
	} else {
		ctx, cancel = context.WithCancel(s.ctx)
	}
	s.cancel = cancel
	s.result.Loading = true

	s.wg.Add(1)
	go s.fetch(ctx, cancel, req, seq)
}

// cancelInflightLocked cancels the running fetch and marks its response stale.
func (s *Store) cancelInflightLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.seq++
	}
	s.result.Loading = false
}

func (s *Store) fetch(ctx context.Context, cancel context.CancelFunc, req request.Request, seq uint64) {
	defer s.wg.Done()
	defer cancel()

	start := time.Now()
	page, err := s.fetcher.Fetch(ctx, req)
	if s.duration != nil {
		s.duration.Observe(time.Since(start).Seconds())
	}

	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		s.incFetch(statusStale)
		s.logger.Debug("Dropped stale search response",
			zap.String("collection", req.Collection()),
			zap.String("query", req.Query()),
		)
		return
	}
	s.cancel = nil
	s.result.Loading = false
	if err != nil {
		s.result.Err = err
		s.mu.Unlock()
		s.incFetch(statusError)
		s.logger.Warn("Search fetch failed",
			zap.String("collection", req.Collection()),
			zap.String("query", req.Query()),
			zap.Error(err),
		)
		s.notifyUnlocked()
		return
	}
	s.result.Data = &page
	s.result.Err = nil
	s.incFetch(statusOK)
	s.notify()
}

func (s *Store) incFetch(status string) {
	if s.fetches != nil {
		s.fetches.WithLabelValues(status).Inc()
	}
}

// notify releases s.mu and calls the listeners with a fresh snapshot.
func (s *Store) notify() {
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) notifyUnlocked() {
	s.mu.Lock()
	s.notify()
}

func (s *Store) listenersLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Cluster:        s.cluster,
		Collection:     s.collection,
		Query:          s.query,
		DebouncedQuery: s.debounced,
		Params:         s.params.Clone(),
		Result:         s.result,
	}
	if s.result.Err != nil {
		snap.Error = s.result.Err.Error()
	}
	return snap
}
