// Package store owns the authoritative in-memory product list and the
// next-identifier counter.
package store

import (
	"log/slog"
	"sync"

	"github.com/abgdnv/catalog/internal/catalog"
)

// Persister receives the full product list after every mutation.
type Persister interface {
	// Save writes the complete list. Implementations report failures for
	// observability; the store keeps serving from memory either way.
	Save(products []catalog.Product) error
}

// Store holds the product list in display order, most recently added
// first. Every mutation rebuilds the list wholesale and writes it through
// to the persister synchronously before returning, so readers never
// observe a partially applied change. Identifiers are strictly increasing
// and never reused within a process lifetime.
type Store struct {
	mu        sync.RWMutex
	products  []catalog.Product
	nextID    int64
	persister Persister
	logger    *slog.Logger
}

// NewStore creates an empty store. Hydrate must run before the store is
// handed to request handlers.
func NewStore(persister Persister, logger *slog.Logger) *Store {
	if persister == nil {
		panic("store: nil persister")
	}
	return &Store{
		nextID:    1,
		persister: persister,
		logger:    logger.With("component", "store"),
	}
}

// Hydrate replaces the entire list and derives the next identifier as
// (max existing identifier, or 0) + 1. It is intended to run exactly once
// at startup with either the persisted list or the seed catalog; it does
// not write through to the persister.
func (s *Store) Hydrate(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]catalog.Product, len(products))
	copy(list, products)

	var maxID int64
	for _, p := range list {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	s.products = list
	s.nextID = maxID + 1
}

// Add assigns the next identifier to the draft, inserts it at the front of
// the list and persists. Duplicate names are permitted. Returns the stored
// product including its new identifier.
func (s *Store) Add(draft catalog.Product) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.nextID
	s.nextID++

	list := make([]catalog.Product, 0, len(s.products)+1)
	list = append(list, draft)
	list = append(list, s.products...)
	s.products = list

	s.persist()
	return draft
}

// Update replaces the element whose identifier matches. An unknown
// identifier leaves the list unchanged; that is a documented edge case,
// not an error. Persists afterward.
func (s *Store) Update(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]catalog.Product, len(s.products))
	for i, p := range s.products {
		if p.ID == product.ID {
			list[i] = product
		} else {
			list[i] = p
		}
	}
	s.products = list

	s.persist()
}

// Remove filters out the element with the given identifier. Removing an
// absent identifier is a no-op. Persists afterward.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			list = append(list, p)
		}
	}
	s.products = list

	s.persist()
}

// Get returns the product with the given identifier.
func (s *Store) Get(id int64) (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// List returns a copy of the product list in display order.
func (s *Store) List() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// NextID returns the identifier the next Add will assign.
func (s *Store) NextID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// persist writes the current list through to the persister while holding
// the write lock, so saves are serialized in mutation order. Failures are
// already logged by the persister; the mutation stands regardless.
func (s *Store) persist() {
	if err := s.persister.Save(s.products); err != nil {
		s.logger.Warn("catalog persistence failed, in-memory state remains authoritative", "error", err)
	}
}
