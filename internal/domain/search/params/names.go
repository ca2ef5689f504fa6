package params

import "errors"

// ErrUnknownParam signals a tuning parameter outside the supported vocabulary.
var ErrUnknownParam = errors.New("unknown search parameter")

// Name is a supported tuning parameter name.
type Name string

// Supported tuning parameters.
const (
	Prefix              Name = "prefix"
	Infix               Name = "infix"
	NumTypos            Name = "num_typos"
	TypoTokensThreshold Name = "typo_tokens_threshold"
	DropTokensThreshold Name = "drop_tokens_threshold"
	MaxFacetValues      Name = "max_facet_values"
	FacetQuery          Name = "facet_query"
	GroupLimit          Name = "group_limit"
	HighlightFields     Name = "highlight_fields"
	IncludeFields       Name = "include_fields"
	ExcludeFields       Name = "exclude_fields"
	ExhaustiveSearch    Name = "exhaustive_search"
	SearchCutoffMS      Name = "search_cutoff_ms"
	MinScore            Name = "min_score"
)

var known = map[Name]struct{}{
	Prefix:              {},
	Infix:               {},
	NumTypos:            {},
	TypoTokensThreshold: {},
	DropTokensThreshold: {},
	MaxFacetValues:      {},
	FacetQuery:          {},
	GroupLimit:          {},
	HighlightFields:     {},
	IncludeFields:       {},
	ExcludeFields:       {},
	ExhaustiveSearch:    {},
	SearchCutoffMS:      {},
	MinScore:            {},
}

// IsValid reports whether n belongs to the supported vocabulary.
func (n Name) IsValid() bool {
	_, ok := known[n]
	return ok
}

// ParseName validates a raw parameter name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !n.IsValid() {
		return "", ErrUnknownParam
	}
	return n, nil
}
