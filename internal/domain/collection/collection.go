// Package collection describes a vecdex collection as the console sees it:
// metadata written by the vecdex service plus live index statistics.
package collection

import (
	"fmt"
	"regexp"

	"github.com/kailas-cloud/vecdex-console/internal/domain/collection/field"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Type distinguishes collection kinds (text vs geo).
type Type string

const (
	// TypeText is the default collection type with embedding-based vector search.
	TypeText Type = "text"
	// TypeGeo is a geo collection using ECEF vectors for spatial search.
	TypeGeo Type = "geo"
)

// IsValid checks if the collection type is supported.
func (t Type) IsValid() bool {
	return t == TypeText || t == TypeGeo
}

// Stats are live index statistics.
type Stats struct {
	NumDocs  int
	Indexing bool
}

// Collection is the document collection aggregate (immutable value object).
type Collection struct {
	name           string
	collectionType Type
	fields         []field.Field
	vectorDim      int
	createdAt      int64
	revision       int
	stats          Stats
}

// ValidateName checks a collection name: ^[a-zA-Z0-9_-]+$, 1-64 chars.
// Names become key segments, so pattern characters are rejected.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("collection name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("collection name too long (max 64)")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("collection name must be alphanumeric with underscores and hyphens")
	}
	return nil
}

// Reconstruct creates a Collection without validation (storage hydration).
func Reconstruct(
	name string, colType Type, fields []field.Field,
	vectorDim int, createdAt int64, revision int,
) Collection {
	if colType == "" {
		colType = TypeText
	}
	return Collection{
		name:           name,
		collectionType: colType,
		fields:         fields,
		vectorDim:      vectorDim,
		createdAt:      createdAt,
		revision:       revision,
	}
}

// WithIndex returns a copy carrying index statistics. Index attributes missing
// from the metadata fields (the text content field) are appended.
func (c Collection) WithIndex(stats Stats, attributes []field.Field) Collection {
	out := c
	out.stats = stats
	out.fields = make([]field.Field, 0, len(c.fields)+len(attributes))
	out.fields = append(out.fields, c.fields...)
	for _, a := range attributes {
		if _, ok := c.FieldByName(a.Name()); !ok {
			out.fields = append(out.fields, a)
		}
	}
	return out
}

// Name returns the collection name.
func (c Collection) Name() string { return c.name }

// Type returns the collection type (text or geo).
func (c Collection) Type() Type { return c.collectionType }

// IsGeo returns true if this is a geo collection.
func (c Collection) IsGeo() bool { return c.collectionType == TypeGeo }

// Fields returns the indexed field definitions.
func (c Collection) Fields() []field.Field { return c.fields }

// VectorDim returns the vector dimension.
func (c Collection) VectorDim() int { return c.vectorDim }

// CreatedAt returns the creation timestamp (unix millis).
func (c Collection) CreatedAt() int64 { return c.createdAt }

// Revision returns the optimistic concurrency version.
func (c Collection) Revision() int { return c.revision }

// Stats returns the index statistics.
func (c Collection) Stats() Stats { return c.stats }

// FieldByName looks up a field by name.
func (c Collection) FieldByName(name string) (field.Field, bool) {
	for _, f := range c.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return field.Field{}, false
}

// SearchFields returns the names of free-text fields, the default query_by.
func (c Collection) SearchFields() []string {
	return c.names(field.Field.Searchable)
}

// FacetFields returns the names of fields that facet counts can be built on.
func (c Collection) FacetFields() []string {
	return c.names(field.Field.Facetable)
}

// SortFields returns the names of fields results can be ordered by.
func (c Collection) SortFields() []string {
	return c.names(field.Field.Sortable)
}

func (c Collection) names(keep func(field.Field) bool) []string {
	var out []string
	for _, f := range c.fields {
		if keep(f) {
			out = append(out, f.Name())
		}
	}
	return out
}
