package db

import "github.com/kailas-cloud/vecdex-console/internal/domain/search/filter"

// MatchAll is the query text that matches every document.
const MatchAll = "*"

// SearchQuery is the input for a paginated FT.SEARCH.
type SearchQuery struct {
	IndexName string
	Text      string   // "" or MatchAll selects every document
	TextIn    []string // restricts Text to these TEXT fields; empty means all
	Prefix    bool     // match term prefixes
	Fuzzy     int      // Levenshtein distance per term, 0..3
	Filters   filter.Expression

	SortBy  string
	SortAsc bool

	Offset int
	Limit  int

	ReturnFields    []string
	HighlightFields []string
	TimeoutMS       int
}

// FacetQuery is the input for a value-count aggregation over one field.
// Text, TextIn and Filters restrict the counted documents like SearchQuery.
type FacetQuery struct {
	IndexName string
	Text      string
	TextIn    []string
	Prefix    bool
	Fuzzy     int
	Filters   filter.Expression
	Field     string
	Limit     int
}

// FacetBucket is one distinct value of a facet field.
type FacetBucket struct {
	Value string
	Count int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
