// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/mwiater/scorecard/internal/dataset"
)

func TestBuildIndexLastEntryWinsOnDuplicateIDs(t *testing.T) {
	index := BuildIndex([]dataset.CatalogModel{
		{Provider: "openai", ID: "shared-id", DisplayName: "First"},
		{Provider: "mistral", ID: "shared-id", DisplayName: "Second"},
	})

	m, ok := index.Lookup("shared-id")
	if !ok {
		t.Fatal("expected duplicate id to resolve")
	}
	if m.DisplayName != "Second" {
		t.Fatalf("expected last entry to win, got %q", m.DisplayName)
	}
}

func TestLookupAbsentID(t *testing.T) {
	index := BuildIndex([]dataset.CatalogModel{{ID: "present"}})
	if _, ok := index.Lookup("absent"); ok {
		t.Fatal("expected absent id to report !ok")
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	index := BuildIndex(nil)
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %d entries", len(index))
	}
}
