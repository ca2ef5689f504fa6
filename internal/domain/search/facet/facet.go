// Package facet derives the filter_by expression from toggled facet values.
//
// An expression is a comma-joined list of field-scoped clauses "field:{op}{value}".
// The backend combines clauses with AND. Two values checked under the same field
// therefore produce two clauses that must both hold; there is no "any of" grouping.
//
// Toggle works on the canonical form: trimmed, non-empty, deduplicated clauses
// joined without spaces. Toggling a value on and then off restores a canonical
// expression exactly; params canonicalize filter_by on every write.
package facet

import (
	"strings"
)

const clauseSeparator = ","

// Operator is a clause comparison operator.
type Operator string

// Supported clause operators.
const (
	OpEqual    Operator = "="
	OpNotEqual Operator = "!="
	OpGT       Operator = ">"
	OpGTE      Operator = ">="
	OpLT       Operator = "<"
	OpLTE      Operator = "<="
)

// IsValid reports whether op is a supported operator.
func (op Operator) IsValid() bool {
	switch op {
	case OpEqual, OpNotEqual, OpGT, OpGTE, OpLT, OpLTE:
		return true
	}
	return false
}

// Clause builds "field:{op}{value}". An empty op means equality.
func Clause(field, value string, op Operator) string {
	if op == "" {
		op = OpEqual
	}
	return field + ":" + string(op) + value
}

// Toggle adds (checked) or removes (unchecked) the clause for field/value/op and
// returns the rejoined expression. Clauses are deduplicated, order is preserved.
func Toggle(current, field, value string, op Operator, checked bool) string {
	candidate := Clause(field, value, op)
	clauses := unique(Clauses(current))

	out := make([]string, 0, len(clauses)+1)
	present := false
	for _, c := range clauses {
		if c == candidate {
			present = true
			if !checked {
				continue
			}
		}
		out = append(out, c)
	}
	if checked && !present {
		out = append(out, candidate)
	}
	return strings.Join(out, clauseSeparator)
}

// Canonical rewrites expr into the form Toggle produces.
func Canonical(expr string) string {
	return strings.Join(unique(Clauses(expr)), clauseSeparator)
}

func unique(clauses []string) []string {
	seen := make(map[string]struct{}, len(clauses))
	out := clauses[:0]
	for _, c := range clauses {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Clauses splits an expression into its non-empty clauses.
func Clauses(expr string) []string {
	if expr == "" {
		return nil
	}
	parts := strings.Split(expr, clauseSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parsed is a clause split into its parts.
type Parsed struct {
	Field string
	Op    Operator
	Value string
}

// Parse splits a clause into field, operator and value.
func Parse(clause string) (Parsed, bool) {
	field, rest, ok := strings.Cut(clause, ":")
	if !ok || field == "" {
		return Parsed{}, false
	}
	// Longest operators first so ">=" is not read as ">".
	for _, op := range []Operator{OpNotEqual, OpGTE, OpLTE, OpEqual, OpGT, OpLT} {
		if strings.HasPrefix(rest, string(op)) {
			return Parsed{Field: field, Op: op, Value: rest[len(op):]}, true
		}
	}
	return Parsed{}, false
}

// Selected returns the values checked with equality under field.
func Selected(expr, field string) []string {
	var out []string
	for _, c := range Clauses(expr) {
		p, ok := Parse(c)
		if ok && p.Field == field && p.Op == OpEqual {
			out = append(out, p.Value)
		}
	}
	return out
}

// IsSelected reports whether the equality clause for field/value is present.
func IsSelected(expr, field, value string) bool {
	candidate := Clause(field, value, OpEqual)
	for _, c := range Clauses(expr) {
		if c == candidate {
			return true
		}
	}
	return false
}
