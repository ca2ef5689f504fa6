package collection

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/vecdex-console/internal/domain/collection/field"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string
	}{
		{"products", ""},
		{"my_col-2", ""},
		{"", "required"},
		{strings.Repeat("a", 65), "too long"},
		{"a*", "alphanumeric"},
		{"a:b", "alphanumeric"},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("ValidateName(%q): unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("ValidateName(%q) = %v, want error containing %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestReconstruct_DefaultsType(t *testing.T) {
	col := Reconstruct("c", "", nil, 1024, 1, 1)
	if col.Type() != TypeText || col.IsGeo() {
		t.Errorf("expected text collection, got %q", col.Type())
	}
}

func TestWithIndex_MergesAttributes(t *testing.T) {
	col := Reconstruct("products", TypeText, []field.Field{
		field.Reconstruct("brand", field.Tag),
		field.Reconstruct("price", field.Numeric),
	}, 1024, 1700000000000, 3)

	enriched := col.WithIndex(Stats{NumDocs: 42, Indexing: true}, []field.Field{
		field.Reconstruct("brand", field.Tag),
		field.Reconstruct("__content", field.Text),
		field.Reconstruct("__vector", field.Vector),
	})

	if enriched.Stats().NumDocs != 42 || !enriched.Stats().Indexing {
		t.Errorf("unexpected stats: %+v", enriched.Stats())
	}
	if len(enriched.Fields()) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(enriched.Fields()))
	}
	if len(col.Fields()) != 2 {
		t.Error("WithIndex must not modify the receiver")
	}
	if got := enriched.SearchFields(); len(got) != 1 || got[0] != "__content" {
		t.Errorf("SearchFields() = %v", got)
	}
	if got := enriched.FacetFields(); len(got) != 2 {
		t.Errorf("FacetFields() = %v", got)
	}
	if got := enriched.SortFields(); len(got) != 2 || got[1] != "price" {
		t.Errorf("SortFields() = %v", got)
	}
}
