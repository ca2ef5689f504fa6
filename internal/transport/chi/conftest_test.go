package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	"github.com/kailas-cloud/vecdex-console/internal/domain/collection/field"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
	"github.com/kailas-cloud/vecdex-console/internal/domain/preset"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/budget"
	collectionuc "github.com/kailas-cloud/vecdex-console/internal/usecase/collection"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
	documentuc "github.com/kailas-cloud/vecdex-console/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vecdex-console/internal/usecase/health"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/presetsync"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
	usageuc "github.com/kailas-cloud/vecdex-console/internal/usecase/usage"
)

// --- Mocks ---

type mockCollections struct {
	mu      sync.Mutex
	items   map[string]domcol.Collection
	deleted []string
}

func (m *mockCollections) Get(_ context.Context, name string) (domcol.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[name]
	if !ok {
		return domcol.Collection{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCollections) List(_ context.Context) ([]domcol.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domcol.Collection, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *mockCollections) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, name)
	m.deleted = append(m.deleted, name)
	return nil
}

type mockDocuments struct {
	mu       sync.Mutex
	items    map[string]domdoc.Document
	replaced []domdoc.Document
	deleted  []string
}

func (m *mockDocuments) Get(_ context.Context, _, id string) (domdoc.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.items[id]
	if !ok {
		return domdoc.Document{}, domain.ErrNotFound
	}
	return d, nil
}

func (m *mockDocuments) Replace(_ context.Context, _ string, doc domdoc.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[doc.ID()] = doc
	m.replaced = append(m.replaced, doc)
	return nil
}

func (m *mockDocuments) Delete(_ context.Context, _, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPresets struct {
	mu    sync.Mutex
	items map[string]preset.Preset
}

func (m *mockPresets) Save(_ context.Context, p preset.Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.Name()] = p
	return nil
}

func (m *mockPresets) Get(_ context.Context, name string) (preset.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[name]
	if !ok {
		return preset.Preset{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockPresets) List(_ context.Context) ([]preset.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]preset.Preset, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *mockPresets) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[name]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, name)
	return nil
}

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, req request.Request) (result.Page, error) {
	return result.Page{
		Found:   1,
		Page:    1,
		PerPage: 20,
		Hits:    []result.Hit{{ID: "doc-1", Fields: map[string]string{"title": req.Query()}}},
	}, nil
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

type mockLister struct{ err error }

func (m mockLister) ListIndexes(context.Context) ([]string, error) {
	return []string{"vecdex:products:idx"}, m.err
}

// --- Helpers ---

type testEnv struct {
	server      *Server
	router      http.Handler
	collections *mockCollections
	documents   *mockDocuments
	presets     *mockPresets
	dialogs     *dialog.Controller
	surfaces    *query.Surfaces
	budget      *budget.Tracker
	futures     []*dialog.Future
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := domcol.Reconstruct("products", domcol.TypeText, []field.Field{
		field.Reconstruct("brand", field.Tag),
		field.Reconstruct("price", field.Numeric),
	}, 1024, 1700000000000, 2).WithIndex(
		domcol.Stats{NumDocs: 12},
		[]field.Field{field.Reconstruct("content", field.Text)},
	)
	doc, err := domdoc.New("p-1", "trail running shoe", map[string]string{"brand": "acme"}, map[string]float64{"price": 120})
	if err != nil {
		t.Fatalf("domdoc.New: %v", err)
	}
	env := &testEnv{
		collections: &mockCollections{items: map[string]domcol.Collection{"products": products}},
		documents:   &mockDocuments{items: map[string]domdoc.Document{"p-1": doc}},
		presets:     &mockPresets{items: map[string]preset.Preset{}},
	}

	dialogReg, err := dialog.NewRegistry(nil)
	if err != nil {
		t.Fatalf("dialog.NewRegistry: %v", err)
	}
	env.dialogs = dialog.New(dialogReg, nil)

	searchReg, err := query.NewRegistry(nil)
	if err != nil {
		t.Fatalf("query.NewRegistry: %v", err)
	}
	env.surfaces = query.NewSurfaces(searchReg, func(collection string) *query.Store {
		return query.New("main", collection, stubFetcher{}, query.WithDebounce(0))
	}, 2, nil)
	t.Cleanup(env.surfaces.CloseAll)

	env.budget = budget.NewTracker("main", 100, 0, budget.ActionReject, nil)

	collections := collectionuc.New(env.collections, env.dialogs, nil)
	env.server = NewServer(
		collections,
		documentuc.New(env.documents, collections, env.dialogs, nil),
		env.dialogs,
		env.surfaces,
		presetsync.New(env.presets, nil),
		healthuc.New(mockPinger{}, mockLister{}),
		usageuc.New(env.budget),
		nil,
	)
	env.server.settled = func(_ string, f *dialog.Future) { env.futures = append(env.futures, f) }

	r := chi.NewRouter()
	gen.HandlerWithOptions(env.server, gen.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, err.Error())
		},
	})
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// valueRequest builds a dialog request carrying v as the submitted value.
func valueRequest(sessionID string, v any) gen.DialogValueRequest {
	return gen.DialogValueRequest{SessionId: sessionID, Value: &v}
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

// openSurface opens a products surface and waits for its first fetch.
func (e *testEnv) openSurface(t *testing.T, body map[string]any) string {
	t.Helper()
	if body == nil {
		body = map[string]any{}
	}
	body["collection"] = "products"
	rr := e.do(t, http.MethodPost, "/surfaces", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("open surface: got %d: %s", rr.Code, rr.Body.String())
	}
	id := decode[gen.SurfaceResponse](t, rr).Id
	e.wait(t, id)
	return id
}

func (e *testEnv) wait(t *testing.T, id string) {
	t.Helper()
	s, err := e.surfaces.Get(id)
	if err != nil {
		t.Fatalf("surface %s: %v", id, err)
	}
	s.Store().Wait()
}
