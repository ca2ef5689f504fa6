// Package filter compiles a filter_by expression into the conditions a search
// is narrowed by. Every condition is either required (must) or excluded
// (must_not); the backend ANDs them all.
package filter

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/vecdex-console/internal/domain/search/facet"
)

// MaxConditions caps the clauses of one expression.
const MaxConditions = 64

// Expression is a compiled filter_by.
type Expression struct {
	must    []Condition
	mustNot []Condition
}

// Must returns the required conditions in clause order.
func (e Expression) Must() []Condition { return e.must }

// MustNot returns the excluded conditions in clause order.
func (e Expression) MustNot() []Condition { return e.mustNot }

// Len returns the number of conditions.
func (e Expression) Len() int { return len(e.must) + len(e.mustNot) }

// IsEmpty reports whether the expression narrows nothing.
func (e Expression) IsEmpty() bool { return e.Len() == 0 }

// Condition is a tag match or a one-sided numeric bound on a field.
type Condition struct {
	field string
	tag   string
	bound *Bound
}

// Bound is one side of a numeric range.
type Bound struct {
	Value     float64
	Upper     bool // "<" or "<=", otherwise ">" or ">="
	Inclusive bool
}

// Tag creates an exact tag match condition.
func Tag(field, value string) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("filter field is required")
	}
	if value == "" {
		return Condition{}, fmt.Errorf("tag value is required for field %q", field)
	}
	return Condition{field: field, tag: value}, nil
}

// Numeric creates a numeric bound condition.
func Numeric(field string, b Bound) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("filter field is required")
	}
	return Condition{field: field, bound: &b}, nil
}

// Field returns the filtered field.
func (c Condition) Field() string { return c.field }

// TagValue returns the matched tag; empty for numeric conditions.
func (c Condition) TagValue() string { return c.tag }

// Bound returns the numeric bound; the zero Bound for tag conditions.
func (c Condition) Bound() Bound {
	if c.bound == nil {
		return Bound{}
	}
	return *c.bound
}

// IsTag reports whether c is a tag match.
func (c Condition) IsTag() bool { return c.bound == nil }

// FromFacets compiles a facet expression. "=" clauses become required tag
// matches, "!=" clauses excluded tag matches, and comparisons numeric bounds,
// which need a numeric value.
func FromFacets(expr string) (Expression, error) {
	clauses := facet.Clauses(expr)
	if len(clauses) > MaxConditions {
		return Expression{}, fmt.Errorf("too many filter clauses (max %d)", MaxConditions)
	}
	var e Expression
	for _, clause := range clauses {
		p, ok := facet.Parse(clause)
		if !ok {
			return Expression{}, fmt.Errorf("malformed filter clause %q", clause)
		}
		c, err := compile(p)
		if err != nil {
			return Expression{}, err
		}
		if p.Op == facet.OpNotEqual {
			e.mustNot = append(e.mustNot, c)
		} else {
			e.must = append(e.must, c)
		}
	}
	return e, nil
}

func compile(p facet.Parsed) (Condition, error) {
	if p.Op == facet.OpEqual || p.Op == facet.OpNotEqual {
		return Tag(p.Field, p.Value)
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return Condition{}, fmt.Errorf("filter %s%s%s: value is not numeric", p.Field, p.Op, p.Value)
	}
	b := Bound{Value: v}
	switch p.Op {
	case facet.OpGT:
	case facet.OpGTE:
		b.Inclusive = true
	case facet.OpLT:
		b.Upper = true
	case facet.OpLTE:
		b.Upper, b.Inclusive = true, true
	default:
		return Condition{}, fmt.Errorf("unsupported operator %q", p.Op)
	}
	return Numeric(p.Field, b)
}
