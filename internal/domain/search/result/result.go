// Package result holds one page of search results as shown in the console.
package result

// Hit is a single matched document.
type Hit struct {
	ID     string            `json:"id"`
	Score  float64           `json:"score,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FacetValue is one distinct value of a facet field and its document count.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetCounts are the value counts of one facet field.
type FacetCounts struct {
	Field  string       `json:"field"`
	Values []FacetValue `json:"values"`
}

// Group is a set of hits sharing the same group_by values.
type Group struct {
	Key  []string `json:"key"`
	Hits []Hit    `json:"hits"`
}

// Page is one page of results for a search.
type Page struct {
	Found        int           `json:"found"`
	Page         int           `json:"page"`
	PerPage      int           `json:"per_page"`
	Hits         []Hit         `json:"hits"`
	Facets       []FacetCounts `json:"facets,omitempty"`
	Groups       []Group       `json:"groups,omitempty"`
	SearchTimeMS int64         `json:"search_time_ms"`
}

// IsEmpty reports whether the page has no hits.
func (p *Page) IsEmpty() bool {
	return p == nil || len(p.Hits) == 0
}

// TotalPages returns the number of pages for Found at PerPage.
func (p *Page) TotalPages() int {
	if p == nil || p.PerPage <= 0 {
		return 0
	}
	return (p.Found + p.PerPage - 1) / p.PerPage
}

// Facet returns the counts for field.
func (p *Page) Facet(field string) (FacetCounts, bool) {
	if p == nil {
		return FacetCounts{}, false
	}
	for _, f := range p.Facets {
		if f.Field == field {
			return f, true
		}
	}
	return FacetCounts{}, false
}

// GroupHits groups hits by the values of fields, preserving first-seen order.
func GroupHits(hits []Hit, fields []string) []Group {
	if len(fields) == 0 {
		return nil
	}
	var groups []Group
	index := make(map[string]int)
	for _, h := range hits {
		key := make([]string, len(fields))
		id := ""
		for i, f := range fields {
			key[i] = h.Fields[f]
			id += f + "\x00" + key[i] + "\x00"
		}
		if i, ok := index[id]; ok {
			groups[i].Hits = append(groups[i].Hits, h)
			continue
		}
		index[id] = len(groups)
		groups = append(groups, Group{Key: key, Hits: []Hit{h}})
	}
	return groups
}
