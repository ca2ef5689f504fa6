// Package search runs console search requests against collection FT indexes.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vecdex-console/internal/db"
	"github.com/kailas-cloud/vecdex-console/internal/domain"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/filter"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/request"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
)

// Sort direction suffixes of a sort_by entry.
const (
	sortAsc  = "asc"
	sortDesc = "desc"
	// textMatch is the relevance pseudo-field; relevance order is the default.
	textMatch = "_text_match"
)

const maxParallelFacets = 4

// store is the consumer interface for search operations (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	Aggregate(ctx context.Context, q *db.FacetQuery) ([]db.FacetBucket, error)
}

// Repo implements usecase/query.Fetcher.
type Repo struct {
	store          store
	keys           domain.Keys
	maxFacetValues int
	now            func() time.Time
}

// New creates a search repository. maxFacetValues caps values per facet field
// unless a request sets max_facet_values.
func New(s store, keys domain.Keys, maxFacetValues int) *Repo {
	return &Repo{store: s, keys: keys, maxFacetValues: maxFacetValues, now: time.Now}
}

// Fetch runs one search request: a page of hits plus value counts for every
// facet_by field, computed under the same text and filters.
func (r *Repo) Fetch(ctx context.Context, req request.Request) (result.Page, error) {
	start := r.now()
	p := req.Params()

	opts, err := parseOptions(p.Other)
	if err != nil {
		return result.Page{}, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	filters, err := filter.FromFacets(p.FilterBy)
	if err != nil {
		return result.Page{}, fmt.Errorf("%w: filter_by: %w", domain.ErrInvalidParams, err)
	}
	sortField, sortAscending, err := parseSort(p.SortBy)
	if err != nil {
		return result.Page{}, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}

	index := r.keys.Index(req.Collection())
	q := &db.SearchQuery{
		IndexName:       index,
		Text:            req.Query(),
		TextIn:          p.QueryBy,
		Prefix:          opts.prefix,
		Fuzzy:           opts.numTypos,
		Filters:         filters,
		SortBy:          sortField,
		SortAsc:         sortAscending,
		Offset:          req.Offset(),
		Limit:           p.EffectivePerPage(),
		ReturnFields:    opts.includeFields,
		HighlightFields: opts.highlightFields,
		TimeoutMS:       opts.cutoffMS,
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return result.Page{}, r.wrap(req.Collection(), "search", err)
	}

	page := result.Page{
		Found:   sr.Total,
		Page:    p.EffectivePage(),
		PerPage: p.EffectivePerPage(),
		Hits:    r.toHits(req.Collection(), sr, opts),
	}

	facetLimit := r.maxFacetValues
	if opts.maxFacetValues > 0 {
		facetLimit = opts.maxFacetValues
	}
	facets, err := r.facets(ctx, q, p.FacetBy, facetLimit)
	if err != nil {
		return result.Page{}, r.wrap(req.Collection(), "facet", err)
	}
	page.Facets = facets

	if len(p.GroupBy) > 0 {
		page.Groups = limitGroups(result.GroupHits(page.Hits, p.GroupBy), opts.groupLimit)
	}

	page.SearchTimeMS = r.now().Sub(start).Milliseconds()
	return page, nil
}

// facets aggregates every field concurrently. Counts keep facet_by order.
func (r *Repo) facets(ctx context.Context, q *db.SearchQuery, fields []string, limit int) ([]result.FacetCounts, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]result.FacetCounts, len(fields))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFacets)
	for i, field := range fields {
		g.Go(func() error {
			buckets, err := r.store.Aggregate(gctx, &db.FacetQuery{
				IndexName: q.IndexName,
				Text:      q.Text,
				TextIn:    q.TextIn,
				Prefix:    q.Prefix,
				Fuzzy:     q.Fuzzy,
				Filters:   q.Filters,
				Field:     field,
				Limit:     limit,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", field, err)
			}
			out[i] = toFacetCounts(field, buckets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) wrap(collection, op string, err error) error {
	if errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("collection %s: %w", collection, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, collection, err)
}

func (r *Repo) toHits(collection string, sr *db.SearchResult, opts options) []result.Hit {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}
	hits := make([]result.Hit, 0, len(sr.Entries))
	for _, e := range sr.Entries {
		if opts.hasMinScore && e.Score < opts.minScore {
			continue
		}
		fields := make(map[string]string, len(e.Fields))
		for k, v := range e.Fields {
			if _, excluded := opts.excludeFields[k]; excluded || domdoc.IsHidden(k) {
				continue
			}
			fields[k] = v
		}
		hits = append(hits, result.Hit{
			ID:     r.keys.DocID(collection, e.Key),
			Score:  e.Score,
			Fields: fields,
		})
	}
	return hits
}

func toFacetCounts(field string, buckets []db.FacetBucket) result.FacetCounts {
	values := make([]result.FacetValue, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, result.FacetValue{Value: b.Value, Count: b.Count})
	}
	return result.FacetCounts{Field: field, Values: values}
}

func limitGroups(groups []result.Group, limit int) []result.Group {
	if limit <= 0 {
		return groups
	}
	for i := range groups {
		if len(groups[i].Hits) > limit {
			groups[i].Hits = groups[i].Hits[:limit]
		}
	}
	return groups
}

// parseSort reads the first sort_by entry ("field" or "field:asc|desc").
// The index sorts by one field, so later entries are tie-breakers it cannot honor.
func parseSort(sortBy []string) (field string, asc bool, err error) {
	if len(sortBy) == 0 {
		return "", false, nil
	}
	field, dir, _ := strings.Cut(sortBy[0], ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return "", false, fmt.Errorf("sort_by: empty field")
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", sortDesc:
	case sortAsc:
		asc = true
	default:
		return "", false, fmt.Errorf("sort_by %s: direction must be asc or desc", sortBy[0])
	}
	if field == textMatch {
		return "", false, nil
	}
	if !db.IsValidIdentifier(field) {
		return "", false, fmt.Errorf("sort_by: invalid field %q", field)
	}
	return field, asc, nil
}
