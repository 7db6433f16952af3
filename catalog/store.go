package catalog

import "sync"

// Store holds the catalog the server currently serves. The catalog itself is
// immutable; the store only swaps the pointer after an admin rebuild.
type Store struct {
	mu sync.RWMutex
	c  *Catalog
}

// NewStore returns a store seeded with c (which may be nil until the first
// successful load).
func NewStore(c *Catalog) *Store {
	return &Store{c: c}
}

// Get returns the current catalog, or nil when none has loaded yet
func (s *Store) Get() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c
}

// Set swaps in a freshly loaded catalog
func (s *Store) Set(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = c
}
