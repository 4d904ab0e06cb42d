// internal/dataset/store.go
package dataset

import (
	"context"
	"sync"
)

// Loader produces the export document. Implementations are expected to be
// expensive; the Store guarantees a loader runs at most once per lifetime.
type Loader func(ctx context.Context) (*Export, error)

// Store memoizes a single export load. Concurrent first calls share one
// in-flight load, and the result (or error) is cached until Reset.
type Store struct {
	loader Loader

	mu     sync.Mutex
	once   *sync.Once
	export *Export
	err    error
}

// NewStore returns a Store that will lazily invoke loader on first access.
func NewStore(loader Loader) *Store {
	return &Store{loader: loader, once: new(sync.Once)}
}

// Load returns the cached export, invoking the loader on first call. A load
// error is cached the same way a successful load is; there is no retry.
func (s *Store) Load(ctx context.Context) (*Export, error) {
	s.mu.Lock()
	once := s.once
	s.mu.Unlock()

	once.Do(func() {
		export, err := s.loader(ctx)
		s.mu.Lock()
		s.export, s.err = export, err
		s.mu.Unlock()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.export, s.err
}

// Reset discards the cached result so the next Load fetches again. Exists for
// tests; production code never calls it.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.once = new(sync.Once)
	s.export = nil
	s.err = nil
}

// Runs returns the run rows from the cached export.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	export, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return export.Runs, nil
}

// Models returns the catalog model records from the cached export.
func (s *Store) Models(ctx context.Context) ([]CatalogModel, error) {
	export, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return export.Catalog.Models, nil
}

// FileScores returns the per-run file score map from the cached export.
func (s *Store) FileScores(ctx context.Context) (map[string][]FileResult, error) {
	export, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return export.FileScores, nil
}

// ExportedAt returns the export's publish timestamp string.
func (s *Store) ExportedAt(ctx context.Context) (string, error) {
	export, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return export.ExportedAt, nil
}
