package model

import (
	"sync"
)

// Store memoizes compiled table definitions, keyed by canonical table
// name. A store guarantees at most one compilation per
// (dataset, table, version) triple for its lifetime and always returns
// the same *Table pointer for repeated lookups of a key; downstream
// consumers rely on that identity for relationship wiring.
//
// The store is unbounded and never evicts. Recompiling a table whose
// schema changed without a version bump silently returns the stale
// definition; callers must bump the version whenever a schema's shape
// changes.
type Store struct {
	mu     sync.Mutex
	models map[string]*Table
}

// NewStore creates an empty model store.
func NewStore() *Store {
	return &Store{models: make(map[string]*Table)}
}

// Contains reports whether a model is cached for the triple.
func (s *Store) Contains(dataset, table string, version int) bool {
	key := FormatTableName(dataset, table, version)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.models[key]
	return ok
}

// Get returns the cached model for the triple, if any.
func (s *Store) Get(dataset, table string, version int) (*Table, bool) {
	key := FormatTableName(dataset, table, version)
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.models[key]
	return m, ok
}

// Len returns the number of cached models.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.models)
}

// GetOrCompile returns the cached model for the triple, invoking
// compile only when the key is absent. The lock is held across
// compile, so concurrent first-time requests for one key serialize
// and all receive the single stored instance. Failed compilations
// store nothing.
func (s *Store) GetOrCompile(
	dataset string,
	table string,
	version int,
	compile func() (*Table, error),
) (*Table, error) {
	key := FormatTableName(dataset, table, version)
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.models[key]; ok {
		return m, nil
	}
	m, err := compile()
	if err != nil {
		return nil, err
	}
	s.models[key] = m
	return m, nil
}
