// Package preset models a named, persisted snapshot of search parameters.
//
// Stored values are flat strings: list parameters are comma-joined on save and
// split back into lists on apply. Applying a preset is a one-way copy.
package preset

import (
	"fmt"
	"regexp"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Stored value keys for the list parameters.
const (
	KeyQueryBy = "query_by"
	KeySortBy  = "sort_by"
	KeyFacetBy = "facet_by"
	KeyGroupBy = "group_by"
	KeyPerPage = "per_page"
)

// Preset is a named parameter snapshot.
type Preset struct {
	name   string
	values map[string]string
}

// ValidateName checks a preset name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("preset name too long (max 64)")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("preset name must be alphanumeric with dots, underscores and hyphens")
	}
	return nil
}

// FromParams snapshots p under name. The filter expression, page and preset
// reference are not stored.
func FromParams(name string, p params.Params) (Preset, error) {
	if err := ValidateName(name); err != nil {
		return Preset{}, err
	}
	values := make(map[string]string, 4+len(p.Other))
	putList(values, KeyQueryBy, p.QueryBy)
	putList(values, KeySortBy, p.SortBy)
	putList(values, KeyFacetBy, p.FacetBy)
	putList(values, KeyGroupBy, p.GroupBy)
	if p.PerPage > 0 {
		values[KeyPerPage] = fmt.Sprintf("%d", p.PerPage)
	}
	for n, v := range p.Other {
		values[string(n)] = v
	}
	return Preset{name: name, values: values}, nil
}

// Reconstruct creates a Preset without validation (storage hydration).
func Reconstruct(name string, values map[string]string) Preset {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Preset{name: name, values: cp}
}

// Name returns the preset name.
func (p Preset) Name() string { return p.name }

// Values returns a copy of the stored values.
func (p Preset) Values() map[string]string {
	cp := make(map[string]string, len(p.values))
	for k, v := range p.values {
		cp[k] = v
	}
	return cp
}

// Apply copies the stored values into base and sets the preset reference.
// Unknown stored keys are skipped. Filter and page are reset since they are
// scoped to the previous parameter set.
func (p Preset) Apply(base params.Params) params.Params {
	out := base.Clone()
	out.QueryBy = params.SplitList(p.values[KeyQueryBy])
	out.SortBy = out.WithSortBy(params.SplitList(p.values[KeySortBy])).SortBy
	out.FacetBy = params.SplitList(p.values[KeyFacetBy])
	out.GroupBy = params.SplitList(p.values[KeyGroupBy])
	out.FilterBy = ""
	out.Page = 0
	out.PerPage = 0
	if v, ok := p.values[KeyPerPage]; ok {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 && n <= params.MaxPerPage {
			out.PerPage = n
		}
	}
	out.Other = nil
	for k, v := range p.values {
		n := params.Name(k)
		if !n.IsValid() || v == "" {
			continue
		}
		if out.Other == nil {
			out.Other = make(map[params.Name]string)
		}
		out.Other[n] = v
	}
	out.Preset = p.name
	return out
}

func putList(values map[string]string, key string, list []string) {
	if len(list) == 0 {
		return
	}
	values[key] = params.JoinList(list)
}
