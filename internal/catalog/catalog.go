// internal/catalog/catalog.go
// Package catalog builds the model-id lookup used to join run rows against
// catalog metadata.
package catalog

import "github.com/mwiater/scorecard/internal/dataset"

// Index maps a model id to its catalog record for O(1) joins. The export does
// not enforce id uniqueness; BuildIndex keeps the last entry for a duplicate.
type Index map[string]dataset.CatalogModel

// BuildIndex constructs an Index from catalog model records.
func BuildIndex(models []dataset.CatalogModel) Index {
	index := make(Index, len(models))
	for _, m := range models {
		index[m.ID] = m
	}
	return index
}

// Lookup returns the catalog record for a model id. The join key is a bare
// string with no referential integrity, so absence is an expected outcome,
// not an error.
func (idx Index) Lookup(id string) (dataset.CatalogModel, bool) {
	m, ok := idx[id]
	return m, ok
}
