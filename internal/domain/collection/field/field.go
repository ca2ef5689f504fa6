package field

import (
	"fmt"
	"strings"
)

// Type is the indexing type of a field.
type Type string

// Field type constants.
const (
	// Tag is a tag (exact match) field.
	Tag     Type = "tag"
	Numeric Type = "numeric"
	Text    Type = "text"
	Vector  Type = "vector"
)

// IsValid reports whether t is a known field type.
func (t Type) IsValid() bool {
	switch t {
	case Tag, Numeric, Text, Vector:
		return true
	}
	return false
}

// FromIndexType maps an FT.INFO attribute type (TAG, NUMERIC, ...) to a Type.
func FromIndexType(s string) (Type, error) {
	t := Type(strings.ToLower(s))
	if !t.IsValid() {
		return "", fmt.Errorf("unsupported index attribute type %q", s)
	}
	return t, nil
}

// Field is an immutable value object describing an indexed collection field.
type Field struct {
	name      string
	fieldType Type
}

// New validates and creates a Field.
func New(name string, ft Type) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("field name is required")
	}
	if len(name) > 64 {
		return Field{}, fmt.Errorf("field name %q too long (max 64)", name)
	}
	if !ft.IsValid() {
		return Field{}, fmt.Errorf("invalid field type %q for %q", ft, name)
	}
	return Field{name: name, fieldType: ft}, nil
}

// Reconstruct creates a Field without validation (storage hydration).
func Reconstruct(name string, ft Type) Field {
	return Field{name: name, fieldType: ft}
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// FieldType returns the field's indexing type.
func (f Field) FieldType() Type { return f.fieldType }

// Facetable reports whether value counts can be aggregated on the field.
func (f Field) Facetable() bool { return f.fieldType == Tag || f.fieldType == Numeric }

// Sortable reports whether the field can order results.
func (f Field) Sortable() bool { return f.fieldType == Numeric || f.fieldType == Tag }

// Searchable reports whether free text is matched against the field.
func (f Field) Searchable() bool { return f.fieldType == Text }
