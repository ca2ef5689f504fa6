package query

import (
	"fmt"

	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

// SlotKey names a search result slot.
type SlotKey string

// Search result slots.
const (
	SlotHits       SlotKey = "hits"
	SlotHit        SlotKey = "hit"
	SlotFacets     SlotKey = "facets"
	SlotFacet      SlotKey = "facet"
	SlotFacetValue SlotKey = "facetValue"
	SlotEmpty      SlotKey = "empty"
	SlotError      SlotKey = "error"
	SlotPagination SlotKey = "pagination"
)

// PropFields is the hit prop listing which document fields a hit shows, in order.
const PropFields = "fields"

func element(kind string) slot.Component {
	return func(p slot.Props, children ...view.Node) view.Node {
		return view.El(kind, p, children...)
	}
}

// DefaultSlots returns the default search result components.
func DefaultSlots() slot.Set[SlotKey] {
	return slot.Set[SlotKey]{
		SlotHits:       element("search-hits"),
		SlotHit:        element("search-hit"),
		SlotFacets:     element("search-facets"),
		SlotFacet:      element("search-facet"),
		SlotFacetValue: element("search-facet-value"),
		SlotEmpty:      element("search-empty"),
		SlotError:      element("search-error"),
		SlotPagination: element("search-pagination"),
	}
}

// NewRegistry builds the search slot registry from DefaultSlots with
// components replaced.
func NewRegistry(components slot.Set[SlotKey]) (*slot.Registry[SlotKey], error) {
	defaults := DefaultSlots()
	for k, c := range components {
		if _, known := defaults[k]; !known {
			return nil, fmt.Errorf("%w: %q", slot.ErrUnknownSlot, k)
		}
		if c == nil {
			return nil, fmt.Errorf("%w: %q", slot.ErrMissingSlot, k)
		}
		defaults[k] = c
	}
	reg, err := slot.NewRegistry(defaults, SlotHits, SlotHit)
	if err != nil {
		return nil, fmt.Errorf("search registry: %w", err)
	}
	return reg, nil
}
