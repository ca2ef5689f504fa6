// Package params models the structured part of a search: which fields to query,
// sort, facet and group by, the derived filter expression, the preset reference
// and a closed vocabulary of tuning parameters.
//
// Params is a value type. Every With* method returns a new value and clones the
// lists it touches, so a Params handed to a cache or a listener never changes.
package params

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/facet"
)

// MaxSortBy is the backend limit on sort_by entries.
const MaxSortBy = 3

// MaxPerPage is the largest accepted page size.
const MaxPerPage = 250

// DefaultPerPage is used when PerPage is unset.
const DefaultPerPage = 20

// Params is the structured search query of one search surface.
type Params struct {
	QueryBy  []string        `json:"query_by,omitempty"`
	SortBy   []string        `json:"sort_by,omitempty"`
	FacetBy  []string        `json:"facet_by,omitempty"`
	GroupBy  []string        `json:"group_by,omitempty"`
	FilterBy string          `json:"filter_by,omitempty"`
	Preset   string          `json:"preset,omitempty"`
	Page     int             `json:"page,omitempty"`
	PerPage  int             `json:"per_page,omitempty"`
	Other    map[Name]string `json:"other,omitempty"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	QueryBy  *[]string       `json:"query_by,omitempty"`
	SortBy   *[]string       `json:"sort_by,omitempty"`
	FacetBy  *[]string       `json:"facet_by,omitempty"`
	GroupBy  *[]string       `json:"group_by,omitempty"`
	FilterBy *string         `json:"filter_by,omitempty"`
	Preset   *string         `json:"preset,omitempty"`
	Page     *int            `json:"page,omitempty"`
	PerPage  *int            `json:"per_page,omitempty"`
	Other    map[Name]string `json:"other,omitempty"` // empty value removes the entry
}

// Apply returns p with patch applied. The result shares no lists with p or patch.
func (p Params) Apply(patch Patch) (Params, error) {
	out := p.Clone()
	if patch.QueryBy != nil {
		out.QueryBy = normalizeList(*patch.QueryBy)
	}
	if patch.SortBy != nil {
		out = out.WithSortBy(*patch.SortBy)
	}
	if patch.FacetBy != nil {
		out.FacetBy = normalizeList(*patch.FacetBy)
	}
	if patch.GroupBy != nil {
		out.GroupBy = normalizeList(*patch.GroupBy)
	}
	if patch.FilterBy != nil {
		out.FilterBy = facet.Canonical(*patch.FilterBy)
	}
	if patch.Preset != nil {
		out.Preset = *patch.Preset
	}
	if patch.Page != nil {
		if *patch.Page < 0 {
			return Params{}, fmt.Errorf("page must be non-negative, got %d", *patch.Page)
		}
		out.Page = *patch.Page
	}
	if patch.PerPage != nil {
		if *patch.PerPage < 0 || *patch.PerPage > MaxPerPage {
			return Params{}, fmt.Errorf("per_page must be between 0 and %d, got %d", MaxPerPage, *patch.PerPage)
		}
		out.PerPage = *patch.PerPage
	}
	for name, v := range patch.Other {
		var err error
		out, err = out.WithOther(name, v)
		if err != nil {
			return Params{}, err
		}
	}
	return out, nil
}

// Clone returns a deep copy.
func (p Params) Clone() Params {
	out := p
	out.QueryBy = slices.Clone(p.QueryBy)
	out.SortBy = slices.Clone(p.SortBy)
	out.FacetBy = slices.Clone(p.FacetBy)
	out.GroupBy = slices.Clone(p.GroupBy)
	if p.Other != nil {
		out.Other = make(map[Name]string, len(p.Other))
		for k, v := range p.Other {
			out.Other[k] = v
		}
	}
	return out
}

// WithSortBy stores at most MaxSortBy entries; extra entries are dropped.
func (p Params) WithSortBy(fields []string) Params {
	out := p.Clone()
	fields = normalizeList(fields)
	if len(fields) > MaxSortBy {
		fields = fields[:MaxSortBy]
	}
	out.SortBy = fields
	return out
}

// WithFilterBy replaces the filter expression with its canonical form.
func (p Params) WithFilterBy(expr string) Params {
	out := p.Clone()
	out.FilterBy = facet.Canonical(expr)
	return out
}

// WithPreset replaces the preset reference.
func (p Params) WithPreset(name string) Params {
	out := p.Clone()
	out.Preset = name
	return out
}

// WithPage replaces the page number.
func (p Params) WithPage(page int) Params {
	out := p.Clone()
	out.Page = page
	return out
}

// WithOther sets a tuning parameter; an empty value removes it.
func (p Params) WithOther(name Name, value string) (Params, error) {
	if !name.IsValid() {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	out := p.Clone()
	if value == "" {
		delete(out.Other, name)
		if len(out.Other) == 0 {
			out.Other = nil
		}
		return out, nil
	}
	if out.Other == nil {
		out.Other = make(map[Name]string, 1)
	}
	out.Other[name] = value
	return out, nil
}

// EffectivePage returns Page, defaulting to 1.
func (p Params) EffectivePage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// EffectivePerPage returns PerPage, defaulting to DefaultPerPage.
func (p Params) EffectivePerPage() int {
	if p.PerPage <= 0 {
		return DefaultPerPage
	}
	return p.PerPage
}

// Equal reports whether p and o describe the same query.
func (p Params) Equal(o Params) bool {
	return p.Canonical() == o.Canonical()
}

// Canonical returns a stable string encoding used in cache keys.
// Map keys are emitted in sorted order by encoding/json.
func (p Params) Canonical() string {
	norm := p.Clone()
	if len(norm.Other) == 0 {
		norm.Other = nil
	}
	data, err := json.Marshal(norm)
	if err != nil {
		// Params holds only strings, ints and string maps.
		panic(fmt.Sprintf("params: marshal: %v", err))
	}
	return string(data)
}

// SplitList converts a comma-joined list into its entries, trimming blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	return normalizeList(parts)
}

// JoinList is the inverse of SplitList.
func JoinList(list []string) string {
	return strings.Join(normalizeList(list), ",")
}

func normalizeList(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedOther returns the tuning parameters ordered by name.
func (p Params) SortedOther() []Name {
	names := make([]Name, 0, len(p.Other))
	for n := range p.Other {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
