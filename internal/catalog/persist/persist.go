// Package persist maps the product catalog to a single key-value store
// entry holding the full list as one JSON document.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/kvstore"
)

// productsKey is the fixed entry the whole catalog is stored under.
const productsKey = "products"

// Adapter saves and loads the product list. Storage problems never
// propagate past this boundary as failures the caller must handle: Save
// reports the error for logging purposes but callers may ignore it, and
// Load falls back to "nothing stored" on any unusable payload.
type Adapter struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewAdapter creates an Adapter on top of the given store.
func NewAdapter(store kvstore.Store, logger *slog.Logger) *Adapter {
	if store == nil {
		panic("persist: nil store")
	}
	return &Adapter{
		store:  store,
		logger: logger.With("component", "persist"),
	}
}

// Save serializes the full product list and writes it to the store.
// The error is logged here and returned so callers can observe it; the
// catalog keeps serving from memory regardless.
func (a *Adapter) Save(products []catalog.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		a.logger.Error("failed to encode products", "error", err)
		return fmt.Errorf("encode products: %w", err)
	}
	if err := a.store.Set(productsKey, string(payload)); err != nil {
		a.logger.Error("failed to persist products", "count", len(products), "error", err)
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}

// Load reads the stored product list. The boolean reports whether a usable
// list was found; an absent entry, a malformed payload or any record that
// fails validation all return false so the caller can fall back to seed
// data.
func (a *Adapter) Load() ([]catalog.Product, bool) {
	value, ok, err := a.store.Get(productsKey)
	if err != nil {
		a.logger.Error("failed to read persisted products", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var products []catalog.Product
	if err := json.Unmarshal([]byte(value), &products); err != nil {
		a.logger.Warn("persisted products are malformed, treating as absent", "error", err)
		return nil, false
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			a.logger.Warn("persisted product is invalid, treating list as absent", "id", p.ID, "error", err)
			return nil, false
		}
	}
	return products, true
}
