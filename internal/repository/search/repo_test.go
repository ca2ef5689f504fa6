package search

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

func TestFetch_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchFn = func(_ context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		if q.IndexName != "vecdex:products:idx" {
			t.Errorf("unexpected index: %s", q.IndexName)
		}
		if q.Text != "shoes" || len(q.TextIn) != 1 || q.TextIn[0] != "title" {
			t.Errorf("unexpected text part: %q in %v", q.Text, q.TextIn)
		}
		if !q.Prefix {
			t.Error("expected prefix matching by default")
		}
		if q.Offset != 10 || q.Limit != 10 {
			t.Errorf("expected offset 10 limit 10, got %d/%d", q.Offset, q.Limit)
		}
		if len(q.Filters.Must()) != 1 || q.Filters.Must()[0].TagValue() != "acme" {
			t.Errorf("expected brand filter, got %+v", q.Filters)
		}
		return &db.SearchResult{
			Total: 11,
			Entries: []db.SearchEntry{
				{Key: "vecdex:products:p-1", Score: 2.5, Fields: map[string]string{
					"title":          "red shoes",
					"__vector":       "\x00\x01",
					"__vector_score": "0.1",
				}},
			},
		}, nil
	}

	p := params.Params{QueryBy: []string{"title"}, FilterBy: "brand:=acme", Page: 2, PerPage: 10}
	page, err := repo.Fetch(context.Background(), mustRequest(t, "shoes", p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Found != 11 || page.Page != 2 || page.PerPage != 10 {
		t.Errorf("unexpected paging: %+v", page)
	}
	if len(page.Hits) != 1 || page.Hits[0].ID != "p-1" {
		t.Fatalf("unexpected hits: %+v", page.Hits)
	}
	if f := page.Hits[0].Fields; f["title"] != "red shoes" || len(f) != 1 {
		t.Errorf("unexpected fields: %v", page.Hits[0].Fields)
	}
	if page.SearchTimeMS != 7 {
		t.Errorf("expected search time 7ms, got %d", page.SearchTimeMS)
	}
}

func TestFetch_Facets(t *testing.T) {
	repo, ms := newTestRepo(t)

	var calls atomic.Int32
	ms.aggregateFn = func(_ context.Context, q *db.FacetQuery) ([]db.FacetBucket, error) {
		calls.Add(1)
		if q.Limit != 5 {
			t.Errorf("expected max_facet_values 5, got %d", q.Limit)
		}
		if q.Text != "*" {
			t.Errorf("expected facet query to share text, got %q", q.Text)
		}
		if q.Field == "color" {
			return []db.FacetBucket{{Value: "red", Count: 2}}, nil
		}
		return []db.FacetBucket{{Value: "acme", Count: 4}}, nil
	}

	p := params.Params{
		FacetBy: []string{"brand", "color"},
		Other:   map[params.Name]string{params.MaxFacetValues: "5"},
	}
	page, err := repo.Fetch(context.Background(), mustRequest(t, "*", p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 aggregations, got %d", calls.Load())
	}
	if len(page.Facets) != 2 || page.Facets[0].Field != "brand" || page.Facets[1].Field != "color" {
		t.Errorf("expected facets in facet_by order, got %+v", page.Facets)
	}
	counts, ok := page.Facet("brand")
	if !ok || len(counts.Values) != 1 || counts.Values[0].Count != 4 {
		t.Errorf("unexpected brand counts: %+v", counts)
	}
}

func TestFetch_DefaultFacetLimit(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.aggregateFn = func(_ context.Context, q *db.FacetQuery) ([]db.FacetBucket, error) {
		if q.Limit != 10 {
			t.Errorf("expected configured limit 10, got %d", q.Limit)
		}
		return nil, nil
	}
	if _, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{FacetBy: []string{"brand"}})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetch_Sort(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  []string
		field   string
		asc     bool
		wantErr bool
	}{
		{"none", nil, "", false, false},
		{"field only", []string{"price"}, "price", false, false},
		{"asc", []string{"price:asc", "rating:desc"}, "price", true, false},
		{"relevance", []string{"_text_match:desc"}, "", false, false},
		{"bad direction", []string{"price:up"}, "", false, true},
		{"bad field", []string{"pri ce"}, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, ms := newTestRepo(t)
			var got *db.SearchQuery
			ms.searchFn = func(_ context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
				got = q
				return &db.SearchResult{}, nil
			}
			_, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{SortBy: tt.sortBy}))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidParams) {
					t.Fatalf("expected ErrInvalidParams, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.SortBy != tt.field || got.SortAsc != tt.asc {
				t.Errorf("got sort %q asc=%v, want %q asc=%v", got.SortBy, got.SortAsc, tt.field, tt.asc)
			}
		})
	}
}

func TestFetch_Options(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchFn = func(_ context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
		if q.Prefix {
			t.Error("expected prefix=false")
		}
		if q.Fuzzy != 2 {
			t.Errorf("expected fuzzy 2, got %d", q.Fuzzy)
		}
		if q.TimeoutMS != 150 {
			t.Errorf("expected timeout 150, got %d", q.TimeoutMS)
		}
		if len(q.ReturnFields) != 2 || len(q.HighlightFields) != 1 {
			t.Errorf("unexpected field lists: %v %v", q.ReturnFields, q.HighlightFields)
		}
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{Key: "vecdex:products:a", Score: 3, Fields: map[string]string{"title": "A", "secret": "x"}},
				{Key: "vecdex:products:b", Score: 0.5, Fields: map[string]string{"title": "B"}},
			},
		}, nil
	}

	p := params.Params{Other: map[params.Name]string{
		params.Prefix:          "false",
		params.NumTypos:        "2",
		params.SearchCutoffMS:  "150",
		params.IncludeFields:   "title,secret",
		params.ExcludeFields:   "secret",
		params.HighlightFields: "title",
		params.MinScore:        "1",
		params.Infix:           "always",
	}}
	page, err := repo.Fetch(context.Background(), mustRequest(t, "a", p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Hits) != 1 || page.Hits[0].ID != "a" {
		t.Fatalf("expected min_score to drop b, got %+v", page.Hits)
	}
	if _, ok := page.Hits[0].Fields["secret"]; ok {
		t.Error("expected excluded field to be removed")
	}
}

func TestFetch_InvalidOptions(t *testing.T) {
	tests := map[params.Name]string{
		params.NumTypos:       "9",
		params.Prefix:         "maybe",
		params.MaxFacetValues: "0",
		params.GroupLimit:     "x",
	}
	for name, v := range tests {
		t.Run(string(name), func(t *testing.T) {
			repo, _ := newTestRepo(t)
			p := params.Params{Other: map[params.Name]string{name: v}}
			_, err := repo.Fetch(context.Background(), mustRequest(t, "*", p))
			if !errors.Is(err, domain.ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestFetch_InvalidFilter(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{FilterBy: "price:>cheap"}))
	if !errors.Is(err, domain.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestFetch_Groups(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchFn = func(_ context.Context, _ *db.SearchQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 3,
			Entries: []db.SearchEntry{
				{Key: "vecdex:products:1", Fields: map[string]string{"brand": "acme"}},
				{Key: "vecdex:products:2", Fields: map[string]string{"brand": "globex"}},
				{Key: "vecdex:products:3", Fields: map[string]string{"brand": "acme"}},
			},
		}, nil
	}

	p := params.Params{GroupBy: []string{"brand"}, Other: map[params.Name]string{params.GroupLimit: "1"}}
	page, err := repo.Fetch(context.Background(), mustRequest(t, "*", p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(page.Groups))
	}
	if page.Groups[0].Key[0] != "acme" || len(page.Groups[0].Hits) != 1 {
		t.Errorf("expected acme group capped at 1 hit, got %+v", page.Groups[0])
	}
	if len(page.Hits) != 3 {
		t.Errorf("group limit must not trim the flat hit list, got %d", len(page.Hits))
	}
}

func TestFetch_UnknownCollection(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchFn = func(_ context.Context, _ *db.SearchQuery) (*db.SearchResult, error) {
		return nil, db.ErrIndexNotFound
	}
	_, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{}))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetch_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	storeErr := &db.Error{Op: db.OpSearch, Err: errors.New("timeout")}
	ms.searchFn = func(_ context.Context, _ *db.SearchQuery) (*db.SearchResult, error) {
		return nil, storeErr
	}
	_, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{}))
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestFetch_FacetError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.aggregateFn = func(_ context.Context, _ *db.FacetQuery) ([]db.FacetBucket, error) {
		return nil, errors.New("boom")
	}
	_, err := repo.Fetch(context.Background(), mustRequest(t, "*", params.Params{FacetBy: []string{"brand", "color"}}))
	if err == nil {
		t.Fatal("expected error")
	}
}
