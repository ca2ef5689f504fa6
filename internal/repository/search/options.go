package search

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

// maxTypos is the widest fuzzy distance the index accepts.
const maxTypos = 3

// options are the tuning parameters the index can honor. The remaining
// vocabulary (infix, token thresholds, facet_query, exhaustive_search) has no
// FT.SEARCH counterpart and is accepted without effect.
type options struct {
	prefix          bool
	numTypos        int
	includeFields   []string
	excludeFields   map[string]struct{}
	highlightFields []string
	maxFacetValues  int
	groupLimit      int
	cutoffMS        int
	minScore        float64
	hasMinScore     bool
}

func parseOptions(other map[params.Name]string) (options, error) {
	opts := options{prefix: true}
	for _, name := range sortedNames(other) {
		v := other[name]
		var err error
		switch name {
		case params.Prefix:
			opts.prefix, err = strconv.ParseBool(v)
		case params.NumTypos:
			opts.numTypos, err = parseBounded(v, 0, maxTypos)
		case params.IncludeFields:
			opts.includeFields = params.SplitList(v)
		case params.ExcludeFields:
			list := params.SplitList(v)
			opts.excludeFields = make(map[string]struct{}, len(list))
			for _, f := range list {
				opts.excludeFields[f] = struct{}{}
			}
		case params.HighlightFields:
			opts.highlightFields = params.SplitList(v)
		case params.MaxFacetValues:
			opts.maxFacetValues, err = parseBounded(v, 1, 1000)
		case params.GroupLimit:
			opts.groupLimit, err = parseBounded(v, 1, 100)
		case params.SearchCutoffMS:
			opts.cutoffMS, err = parseBounded(v, 0, 60_000)
		case params.MinScore:
			opts.minScore, err = strconv.ParseFloat(v, 64)
			opts.hasMinScore = err == nil
		}
		if err != nil {
			return options{}, fmt.Errorf("%s=%q: %w", name, v, err)
		}
	}
	return opts, nil
}

func parseBounded(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer")
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return n, nil
}

func sortedNames(other map[params.Name]string) []params.Name {
	return params.Params{Other: other}.SortedOther()
}
