package filter

import (
	"strings"
	"testing"
)

func TestTag_Validation(t *testing.T) {
	if _, err := Tag("", "x"); err == nil {
		t.Error("expected error for empty field")
	}
	if _, err := Tag("brand", ""); err == nil {
		t.Error("expected error for empty value")
	}
	c, err := Tag("brand", "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsTag() || c.TagValue() != "acme" || c.Field() != "brand" {
		t.Errorf("expected tag condition, got %+v", c)
	}
}

func TestNumeric_Validation(t *testing.T) {
	if _, err := Numeric("", Bound{Value: 1}); err == nil {
		t.Error("expected error for empty field")
	}
	c, err := Numeric("price", Bound{Value: 5, Upper: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsTag() || c.Bound() != (Bound{Value: 5, Upper: true}) {
		t.Errorf("expected numeric condition, got %+v", c)
	}
}

func TestFromFacets_Empty(t *testing.T) {
	expr, err := FromFacets("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expr.IsEmpty() {
		t.Error("expected empty expression")
	}
}

func TestFromFacets_Groups(t *testing.T) {
	expr, err := FromFacets("brand:=acme,brand:=globex,color:!=red,price:>=10,price:<99.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expr.Must()) != 4 || expr.Len() != 5 {
		t.Fatalf("expected 4 must of 5 conditions, got %d of %d", len(expr.Must()), expr.Len())
	}
	if got := expr.Must()[1].TagValue(); got != "globex" {
		t.Errorf("expected clause order preserved, got %q", got)
	}
	if len(expr.MustNot()) != 1 || expr.MustNot()[0].TagValue() != "red" {
		t.Errorf("expected color!=red in must_not, got %+v", expr.MustNot())
	}
	if got := expr.Must()[2].Bound(); got != (Bound{Value: 10, Inclusive: true}) {
		t.Errorf("expected price >= 10, got %+v", got)
	}
	if got := expr.Must()[3].Bound(); got != (Bound{Value: 99.5, Upper: true}) {
		t.Errorf("expected price < 99.5, got %+v", got)
	}
}

func TestFromFacets_Operators(t *testing.T) {
	tests := []struct {
		clause string
		want   Bound
	}{
		{"n:>1", Bound{Value: 1}},
		{"n:>=1", Bound{Value: 1, Inclusive: true}},
		{"n:<1", Bound{Value: 1, Upper: true}},
		{"n:<=1", Bound{Value: 1, Upper: true, Inclusive: true}},
	}
	for _, tc := range tests {
		expr, err := FromFacets(tc.clause)
		if err != nil {
			t.Fatalf("%s: %v", tc.clause, err)
		}
		if got := expr.Must()[0].Bound(); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.clause, got, tc.want)
		}
	}
}

func TestFromFacets_NonNumericComparison(t *testing.T) {
	if _, err := FromFacets("price:>cheap"); err == nil {
		t.Fatal("expected error for non-numeric comparison")
	}
}

func TestFromFacets_Malformed(t *testing.T) {
	if _, err := FromFacets("brand"); err == nil {
		t.Fatal("expected error for clause without operator")
	}
}

func TestFromFacets_TooManyClauses(t *testing.T) {
	clauses := make([]string, MaxConditions+1)
	for i := range clauses {
		clauses[i] = "k:=v"
	}
	_, err := FromFacets(strings.Join(clauses, ","))
	if err == nil || !strings.Contains(err.Error(), "too many") {
		t.Fatalf("expected clause limit error, got %v", err)
	}
	if _, err := FromFacets(strings.Join(clauses[:MaxConditions], ",")); err != nil {
		t.Fatalf("unexpected error at max: %v", err)
	}
}
