// Package document models a stored document as the console shows and edits it.
//
// Documents are hashes. The text lives in FieldContent, the embedding in
// FieldVector; every other field is metadata. The console never reads or
// writes embeddings: they are hidden from views and preserved on edit.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Reserved hash fields.
const (
	FieldContent     = "__content"
	FieldVector      = "__vector"
	FieldVectorScore = "__vector_score"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// IsHidden reports whether a hash field holds binary or scoring data never shown.
func IsHidden(field string) bool {
	return field == FieldVector || field == FieldVectorScore
}

// Document is a stored document without its embedding.
type Document struct {
	id       string
	content  string
	tags     map[string]string
	numerics map[string]float64
}

// ValidateID checks a document id.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("document ID is required")
	}
	if len(id) > 256 {
		return fmt.Errorf("document ID too long (max 256)")
	}
	if !idRegex.MatchString(id) {
		return fmt.Errorf("document ID must be alphanumeric with underscores and hyphens")
	}
	return nil
}

// New validates and creates a Document.
func New(id, content string, tags map[string]string, numerics map[string]float64) (Document, error) {
	if err := ValidateID(id); err != nil {
		return Document{}, err
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}
	for k := range tags {
		if err := validateFieldName(k); err != nil {
			return Document{}, err
		}
	}
	for k := range numerics {
		if err := validateFieldName(k); err != nil {
			return Document{}, err
		}
		if _, dup := tags[k]; dup {
			return Document{}, fmt.Errorf("field %q is both a tag and a numeric", k)
		}
	}
	return Document{
		id:       id,
		content:  content,
		tags:     cloneMap(tags),
		numerics: cloneMap(numerics),
	}, nil
}

func validateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name is required")
	}
	if name == FieldContent || IsHidden(name) {
		return fmt.Errorf("field name %q is reserved", name)
	}
	return nil
}

// FromHash hydrates a Document from hash fields. Values that parse as numbers
// become numerics, everything else a tag. Hidden fields are dropped.
func FromHash(id string, m map[string]string) Document {
	d := Document{id: id, tags: map[string]string{}, numerics: map[string]float64{}}
	for k, v := range m {
		switch {
		case k == FieldContent:
			d.content = v
		case IsHidden(k):
		default:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				d.numerics[k] = f
			} else {
				d.tags[k] = v
			}
		}
	}
	return d
}

// Hash returns the hash fields of d, without the embedding.
func (d Document) Hash() map[string]string {
	m := make(map[string]string, 1+len(d.tags)+len(d.numerics))
	m[FieldContent] = d.content
	for k, v := range d.tags {
		m[k] = v
	}
	for k, v := range d.numerics {
		m[k] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return m
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Content returns the document text content.
func (d Document) Content() string { return d.content }

// Tags returns a copy of the tag fields.
func (d Document) Tags() map[string]string { return cloneMap(d.tags) }

// Numerics returns a copy of the numeric fields.
func (d Document) Numerics() map[string]float64 { return cloneMap(d.numerics) }

// FieldNames returns the metadata field names, sorted.
func (d Document) FieldNames() []string {
	names := make([]string, 0, len(d.tags)+len(d.numerics))
	for k := range d.tags {
		names = append(names, k)
	}
	for k := range d.numerics {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// editable is the JSON shape shown in the editor.
type editable struct {
	Content  string             `json:"content"`
	Tags     map[string]string  `json:"tags,omitempty"`
	Numerics map[string]float64 `json:"numerics,omitempty"`
}

// MarshalEditable renders d as indented JSON for the editor. The id is not
// part of the body since it names the key and cannot change.
func (d Document) MarshalEditable() (string, error) {
	data, err := json.MarshalIndent(editable{Content: d.content, Tags: d.tags, Numerics: d.numerics}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(data), nil
}

// ParseEditable builds the document named id from edited JSON. Unknown keys are rejected.
func ParseEditable(id string, data []byte) (Document, error) {
	var e editable
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	return New(id, e.Content, e.Tags, e.Numerics)
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	c := make(map[string]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
