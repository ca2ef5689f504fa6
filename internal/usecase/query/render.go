package query

import (
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/facet"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/result"
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
)

// Render builds the result view of a snapshot.
//
// Layout: search{ error?, facets{ facet{ facetValue* }* }?, hits{ hit* } | empty, pagination? }.
// The error node is shown alongside the last good page.
func Render(slots slot.Set[SlotKey], props slot.PropsSet[SlotKey], snap Snapshot) view.Node {
	r := renderer{slots: slots, props: props}
	page := snap.Result.Data

	children := []view.Node{
		r.errorNode(snap),
		r.facetsNode(page, snap.Params.FilterBy),
	}
	if page.IsEmpty() {
		if !snap.Result.Loading && page != nil {
			children = append(children, r.render(SlotEmpty, slot.Props{"query": snap.DebouncedQuery}))
		}
	} else {
		children = append(children, r.hitsNode(page))
		children = append(children, r.render(SlotPagination, slot.Props{
			"page":        page.Page,
			"per_page":    page.PerPage,
			"found":       page.Found,
			"total_pages": page.TotalPages(),
		}))
	}

	return view.El("search", map[string]any{
		"collection": snap.Collection,
		"query":      snap.Query,
		"loading":    snap.Result.Loading,
	}, children...)
}

type renderer struct {
	slots slot.Set[SlotKey]
	props slot.PropsSet[SlotKey]
}

// render merges the slot's configured props over base and calls its component.
func (r renderer) render(key SlotKey, base slot.Props, children ...view.Node) view.Node {
	c := r.slots[key]
	if c == nil {
		return view.Node{}
	}
	return c(slot.MergeProps(base, r.props[key]), children...)
}

func (r renderer) errorNode(snap Snapshot) view.Node {
	if snap.Error == "" {
		return view.Node{}
	}
	return r.render(SlotError, slot.Props{"message": snap.Error})
}

func (r renderer) facetsNode(page *result.Page, filterBy string) view.Node {
	if page == nil || len(page.Facets) == 0 {
		return view.Node{}
	}
	facets := make([]view.Node, 0, len(page.Facets))
	for _, fc := range page.Facets {
		values := make([]view.Node, 0, len(fc.Values))
		for _, v := range fc.Values {
			values = append(values, r.render(SlotFacetValue, slot.Props{
				"field":   fc.Field,
				"value":   v.Value,
				"count":   v.Count,
				"checked": facet.IsSelected(filterBy, fc.Field, v.Value),
			}))
		}
		facets = append(facets, r.render(SlotFacet, slot.Props{"field": fc.Field}, values...))
	}
	return r.render(SlotFacets, nil, facets...)
}

func (r renderer) hitsNode(page *result.Page) view.Node {
	shown := r.props[SlotHit].Strings(PropFields)
	hits := make([]view.Node, 0, len(page.Hits))
	for _, h := range page.Hits {
		hits = append(hits, r.render(SlotHit, slot.Props{
			"id":     h.ID,
			"score":  h.Score,
			"values": hitValues(h, shown),
		}))
	}
	return r.render(SlotHits, slot.Props{"count": len(page.Hits)}, hits...)
}

// hitValues returns the fields named by shown, or every field when shown is empty.
func hitValues(h result.Hit, shown []string) map[string]any {
	out := make(map[string]any, len(h.Fields))
	if len(shown) == 0 {
		for k, v := range h.Fields {
			out[k] = v
		}
		return out
	}
	for _, f := range shown {
		if v, ok := h.Fields[f]; ok {
			out[f] = v
		}
	}
	return out
}
