package chi

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/dialog"
	healthuc "github.com/kailas-cloud/vecdex-console/internal/usecase/health"
)

func awaitFuture(t *testing.T, f *dialog.Future) (any, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.Await(ctx)
}

// --- Health ---

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}
	resp := decode[gen.HealthResponse](t, rr)
	if resp.Status != "ok" || resp.Checks["search"] != gen.HealthResponseChecksOk {
		t.Errorf("unexpected health: %+v", resp)
	}

	env.server.health = healthuc.New(mockPinger{err: errors.New("down")}, nil)
	rr = env.do(t, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy: got %d, want 503", rr.Code)
	}
}

// --- Collections ---

func TestListCollections(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/collections", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[gen.CollectionListResponse](t, rr)
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(resp.Items))
	}
	c := resp.Items[0]
	if c.Name != "products" || c.NumDocs != 12 || c.Fields == nil || len(*c.Fields) != 3 {
		t.Errorf("unexpected collection: %+v", c)
	}
}

func TestGetCollection_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/collections/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rr.Code)
	}
	if resp := decode[gen.ErrorResponse](t, rr); resp.Code != gen.ErrorResponseCodeNotFound {
		t.Errorf("code: got %s, want %s", resp.Code, gen.ErrorResponseCodeNotFound)
	}
}

func TestGetCollection_InvalidName(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/collections/bad:name", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
}

func TestDeleteCollection_ConfirmFlow(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodDelete, "/collections/products", nil)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[gen.DialogResponse](t, rr)
	if !resp.State.Open || resp.State.Variant != dialog.Danger {
		t.Fatalf("expected open danger dialog, got %+v", resp.State)
	}
	if resp.View == nil || resp.View.Kind != "dialog" {
		t.Fatalf("expected rendered dialog, got %+v", resp.View)
	}
	if len(env.collections.deleted) != 0 {
		t.Fatal("nothing may be deleted before confirmation")
	}

	rr = env.do(t, http.MethodPost, "/dialog/submit", gen.DialogValueRequest{SessionId: resp.State.ID})
	if rr.Code != http.StatusOK {
		t.Fatalf("submit: got %d: %s", rr.Code, rr.Body.String())
	}
	if decode[gen.DialogResponse](t, rr).State.Open {
		t.Error("dialog must close after a successful submit")
	}
	if !slices.Equal(env.collections.deleted, []string{"products"}) {
		t.Errorf("expected products deleted, got %v", env.collections.deleted)
	}
	if len(env.futures) != 1 {
		t.Fatalf("expected one observed prompt, got %d", len(env.futures))
	}
	if v, err := awaitFuture(t, env.futures[0]); err != nil || v != "products" {
		t.Errorf("future: %v / %v", v, err)
	}
}

func TestDeleteCollection_Cancel(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodDelete, "/collections/products", nil)
	id := decode[gen.DialogResponse](t, rr).State.ID

	rr = env.do(t, http.MethodPost, "/dialog/cancel", gen.DialogSessionRequest{SessionId: id})
	if rr.Code != http.StatusOK {
		t.Fatalf("cancel: got %d", rr.Code)
	}
	if _, err := awaitFuture(t, env.futures[0]); !errors.Is(err, dialog.ErrCanceled) {
		t.Errorf("expected ErrCanceled, got %v", err)
	}
	if len(env.collections.deleted) != 0 {
		t.Error("canceled dialog must not delete")
	}
}

func TestDeleteCollection_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodDelete, "/collections/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rr.Code)
	}
	if env.dialogs.State().Open {
		t.Error("no dialog may open for a missing collection")
	}
}

// --- Dialog ---

func TestDialog_Idle(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/dialog", nil)
	resp := decode[gen.DialogResponse](t, rr)
	if resp.State.Open || resp.View != nil {
		t.Errorf("expected idle dialog, got %+v", resp)
	}

	rr = env.do(t, http.MethodPost, "/dialog/submit", gen.DialogValueRequest{})
	if rr.Code != http.StatusConflict {
		t.Errorf("submit while idle: got %d, want 409", rr.Code)
	}
}

func TestDialog_StaleSession(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodDelete, "/collections/products", nil)

	rr := env.do(t, http.MethodPost, "/dialog/submit", gen.DialogValueRequest{SessionId: "old"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("got %d, want 409", rr.Code)
	}
	if resp := decode[gen.ErrorResponse](t, rr); resp.Code != gen.ErrorResponseCodeDialogConflict {
		t.Errorf("code: got %s", resp.Code)
	}
	if !env.dialogs.State().Open {
		t.Error("a stale submit must not close the open dialog")
	}
}

func TestDialog_DisabledSubmit(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodDelete, "/collections/products", nil)

	rr := env.do(t, http.MethodPost, "/dialog/disabled", gen.DialogDisabledRequest{Disabled: true})
	if !decode[gen.DialogResponse](t, rr).State.SubmitDisabled {
		t.Fatal("expected submit disabled")
	}
	rr = env.do(t, http.MethodPost, "/dialog/submit", gen.DialogValueRequest{})
	if rr.Code != http.StatusConflict {
		t.Errorf("disabled submit: got %d, want 409", rr.Code)
	}
	if len(env.collections.deleted) != 0 {
		t.Error("disabled submit must not run the callback")
	}
}

func TestDialog_PatchSlotProps(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodDelete, "/collections/products", nil)

	rr := env.do(t, http.MethodPatch, "/dialog/slot-props", map[string]any{
		"props": map[string]any{"submit": map[string]any{"label": "Delete"}},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[gen.DialogResponse](t, rr)
	buttons := resp.View.FindAll("button")
	if len(buttons) != 2 || buttons[1].Props["label"] != "Delete" {
		t.Errorf("expected relabeled submit, got %+v", buttons)
	}

	rr = env.do(t, http.MethodPatch, "/dialog/slot-props", map[string]any{
		"props": map[string]any{"footer": map[string]any{}},
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown slot: got %d, want 400", rr.Code)
	}
}

// --- Surfaces ---

func TestOpenSurface_DefaultsAndFirstFetch(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, map[string]any{"query": "shoes"})

	rr := env.do(t, http.MethodGet, "/surfaces/"+id, nil)
	resp := decode[gen.SurfaceResponse](t, rr)
	if !slices.Equal(resp.State.Params.QueryBy, []string{"content"}) {
		t.Errorf("expected text fields as default query_by, got %v", resp.State.Params.QueryBy)
	}
	if resp.State.Cluster != "main" || resp.State.DebouncedQuery != "shoes" {
		t.Errorf("unexpected state: %+v", resp.State)
	}
	data := resp.State.Result.Data
	if data == nil || len(data.Hits) != 1 || data.Hits[0].Fields["title"] != "shoes" {
		t.Errorf("expected fetched page, got %+v", data)
	}
}

func TestOpenSurface_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing collection", map[string]any{}, http.StatusBadRequest},
		{"unknown collection", map[string]any{"collection": "orders"}, http.StatusNotFound},
		{"unknown slot", map[string]any{"collection": "products", "slots": map[string]string{"footer": "x"}}, http.StatusBadRequest},
		{"bad body", "not an object", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, "/surfaces", tt.body)
			if rr.Code != tt.want {
				t.Errorf("got %d, want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
	if env.surfaces.Len() != 0 {
		t.Errorf("failed opens must not leave surfaces, got %d", env.surfaces.Len())
	}
}

func TestOpenSurface_Limit(t *testing.T) {
	env := newTestEnv(t)
	env.openSurface(t, nil)
	env.openSurface(t, nil)

	rr := env.do(t, http.MethodPost, "/surfaces", map[string]any{"collection": "products"})
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("got %d, want 429", rr.Code)
	}
}

func TestSurface_ToggleFacetResetsPage(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, map[string]any{"query": "shoes"})

	env.do(t, http.MethodPut, "/surfaces/"+id+"/page", gen.PageRequest{Page: 3})
	rr := env.do(t, http.MethodPost, "/surfaces/"+id+"/facets", gen.ToggleFacetRequest{
		Field: "brand", Value: "acme", Checked: true,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	p := decode[gen.SurfaceResponse](t, rr).State.Params
	if p.FilterBy != "brand:=acme" || p.Page != 0 {
		t.Errorf("unexpected params: %+v", p)
	}

	rr = env.do(t, http.MethodPost, "/surfaces/"+id+"/facets", map[string]any{
		"field": "brand", "value": "acme", "op": "~", "checked": true,
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad operator: got %d, want 400", rr.Code)
	}
}

func TestSurface_SortTruncatesAndPageValidates(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, nil)

	rr := env.do(t, http.MethodPut, "/surfaces/"+id+"/sort", gen.SortRequest{SortBy: []string{"a", "b", "c", "d"}})
	if got := decode[gen.SurfaceResponse](t, rr).State.Params.SortBy; len(got) != 3 {
		t.Errorf("expected 3 sort entries, got %v", got)
	}

	rr = env.do(t, http.MethodPut, "/surfaces/"+id+"/page", gen.PageRequest{Page: 0})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("page 0: got %d, want 400", rr.Code)
	}
}

func TestSurface_PatchParams(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, nil)

	rr := env.do(t, http.MethodPatch, "/surfaces/"+id+"/params", map[string]any{
		"facet_by": []string{"brand"},
		"other":    map[string]string{"num_typos": "1"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	p := decode[gen.SurfaceResponse](t, rr).State.Params
	if !slices.Equal(p.FacetBy, []string{"brand"}) || p.Other["num_typos"] != "1" {
		t.Errorf("unexpected params: %+v", p)
	}

	rr = env.do(t, http.MethodPatch, "/surfaces/"+id+"/params", map[string]any{
		"other": map[string]string{"no_such_param": "1"},
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown param: got %d, want 400", rr.Code)
	}
}

func TestSurface_PatchParamsRejectsPerPageAboveLimit(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, nil)

	rr := env.do(t, http.MethodPatch, "/surfaces/"+id+"/params", map[string]any{"per_page": 251})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	if resp := decode[gen.ErrorResponse](t, rr); resp.Code != gen.ErrorResponseCodeValidationFailed {
		t.Errorf("unexpected code %q", resp.Code)
	}

	rr = env.do(t, http.MethodGet, "/surfaces/"+id, nil)
	if got := decode[gen.SurfaceResponse](t, rr).State.Params.PerPage; got == 251 {
		t.Error("rejected per_page must not be stored")
	}
}

func TestSurface_ViewWithOverridesAndProps(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, map[string]any{
		"query": "boots",
		"slots": map[string]string{"hit": "product-card"},
	})

	rr := env.do(t, http.MethodPatch, "/surfaces/"+id+"/slot-props", map[string]any{
		"props": map[string]any{"hit": map[string]any{"fields": []string{"title"}}},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("slot props: got %d: %s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodGet, "/surfaces/"+id+"/view", nil)
	node := decode[view.Node](t, rr)
	if node.Kind != "search" || node.Props["surface_id"] != id {
		t.Fatalf("unexpected root: %+v", node)
	}
	cards := node.FindAll("product-card")
	if len(cards) != 1 {
		t.Fatalf("expected overridden hit component, got %+v", node)
	}
	if cards[0].Props["id"] != "doc-1" {
		t.Errorf("unexpected hit props: %+v", cards[0].Props)
	}
}

func TestSurface_CloseAndMissing(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, nil)

	if rr := env.do(t, http.MethodDelete, "/surfaces/"+id, nil); rr.Code != http.StatusNoContent {
		t.Fatalf("close: got %d", rr.Code)
	}
	for _, path := range []string{"/surfaces/" + id, "/surfaces/" + id + "/view"} {
		if rr := env.do(t, http.MethodGet, path, nil); rr.Code != http.StatusNotFound {
			t.Errorf("%s: got %d, want 404", path, rr.Code)
		}
	}
	if rr := env.do(t, http.MethodPut, "/surfaces/"+id+"/query", gen.SetQueryRequest{Query: "x"}); rr.Code != http.StatusNotFound {
		t.Errorf("query on closed surface: got %d, want 404", rr.Code)
	}
}

// --- Presets ---

func TestPresets_SaveSelectDelete(t *testing.T) {
	env := newTestEnv(t)
	first := env.openSurface(t, nil)

	env.do(t, http.MethodPatch, "/surfaces/"+first+"/params", map[string]any{
		"query_by": []string{"title"},
		"sort_by":  []string{"price:asc"},
	})
	rr := env.do(t, http.MethodPut, "/presets/cheap-first", gen.SavePresetRequest{SurfaceId: first})
	if rr.Code != http.StatusOK {
		t.Fatalf("save: got %d: %s", rr.Code, rr.Body.String())
	}
	if got := decode[gen.Preset](t, rr).Values["sort_by"]; got != "price:asc" {
		t.Errorf("stored sort_by: got %q", got)
	}

	rr = env.do(t, http.MethodGet, "/surfaces/"+first, nil)
	if got := decode[gen.SurfaceResponse](t, rr).State.Params.Preset; got != "cheap-first" {
		t.Errorf("saving must activate the preset, got %q", got)
	}

	second := env.openSurface(t, map[string]any{"preset": "cheap-first"})
	rr = env.do(t, http.MethodGet, "/surfaces/"+second, nil)
	p := decode[gen.SurfaceResponse](t, rr).State.Params
	if !slices.Equal(p.QueryBy, []string{"title"}) || !slices.Equal(p.SortBy, []string{"price:asc"}) {
		t.Errorf("preset values not applied: %+v", p)
	}

	rr = env.do(t, http.MethodGet, "/presets", nil)
	if items := decode[gen.PresetListResponse](t, rr).Items; len(items) != 1 {
		t.Errorf("expected 1 preset, got %d", len(items))
	}

	if rr := env.do(t, http.MethodDelete, "/presets/cheap-first", nil); rr.Code != http.StatusNoContent {
		t.Errorf("delete: got %d", rr.Code)
	}
	if rr := env.do(t, http.MethodDelete, "/presets/cheap-first", nil); rr.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rr.Code)
	}
}

func TestPresets_Errors(t *testing.T) {
	env := newTestEnv(t)
	id := env.openSurface(t, nil)

	if rr := env.do(t, http.MethodPut, "/presets/x", gen.SavePresetRequest{SurfaceId: "nope"}); rr.Code != http.StatusNotFound {
		t.Errorf("unknown surface: got %d, want 404", rr.Code)
	}
	if rr := env.do(t, http.MethodPut, "/presets/bad%20name", gen.SavePresetRequest{SurfaceId: id}); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid name: got %d, want 400", rr.Code)
	}
	if rr := env.do(t, http.MethodPost, "/surfaces/"+id+"/preset", gen.SelectPresetRequest{Name: "new-one"}); rr.Code != http.StatusOK {
		t.Errorf("selecting an unsaved name: got %d, want 200", rr.Code)
	}
}
