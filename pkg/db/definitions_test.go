package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefinitionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.GetDefinition(ctx, "chien"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDefinition() on empty table error = %v, want ErrNotFound", err)
	}

	first := Definition{Word: "chien", Title: "chien", Excerpt: "Mammifère domestique.", Language: "fr", SourceURL: "https://fr.wiktionary.org/wiki/chien"}
	if err := db.SaveDefinition(ctx, first); err != nil {
		t.Fatalf("SaveDefinition() error = %v", err)
	}

	updated := Definition{Word: "chien", Excerpt: "Animal."}
	if err := db.SaveDefinition(ctx, updated); err != nil {
		t.Fatalf("SaveDefinition() update error = %v", err)
	}

	got, err := db.GetDefinition(ctx, "chien")
	if err != nil {
		t.Fatalf("GetDefinition() error = %v", err)
	}
	if diff := cmp.Diff(&updated, got); diff != "" {
		t.Errorf("GetDefinition() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewNullString(t *testing.T) {
	tests := []struct {
		in        string
		wantValid bool
	}{
		{in: "", wantValid: false},
		{in: "fr", wantValid: true},
	}
	for _, tt := range tests {
		if got := NewNullString(tt.in); got.Valid != tt.wantValid || got.String != tt.in {
			t.Errorf("NewNullString(%q) = %+v", tt.in, got)
		}
	}
}
