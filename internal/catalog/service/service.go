// Package service provides the catalog business logic consumed by the
// JSON API: lookups with not-found semantics, filtered pages, and the
// create/update/delete operations.
package service

import (
	"errors"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/catalog/query"
)

// ErrProductNotFound is returned when no product exists with the given ID.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the slice of the product store the service depends on.
type Catalog interface {
	// List returns all products in display order, most recently added first.
	List() []catalog.Product
	// Get returns the product with the given identifier.
	Get(id int64) (catalog.Product, bool)
	// Add assigns an identifier to the draft and prepends it to the list.
	Add(draft catalog.Product) catalog.Product
	// Update replaces the product with a matching identifier; unknown
	// identifiers are a silent no-op.
	Update(p catalog.Product)
	// Remove deletes the product with the given identifier if present.
	Remove(id int64)
}

// CatalogService defines the methods for managing the product catalog.
type CatalogService interface {
	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id int64) (*ProductDto, error)

	// FindPage returns one page of the catalog filtered by spec.
	// Pages are 1-based; a page beyond range yields an empty item list.
	FindPage(spec query.Spec, page int) (*PageDto, error)

	// Create adds a new product and returns it with its assigned identifier.
	Create(product ProductCreateDto) (*ProductDto, error)

	// Update replaces an existing product's fields.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(product ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(id int64) error
}

// Service implements CatalogService on top of the product store.
type Service struct {
	store Catalog
}

// NewService creates a new instance of CatalogService with the provided store.
func NewService(store Catalog) *Service {
	if store == nil {
		panic("service: nil store")
	}
	return &Service{store: store}
}

// ProductCreateDto carries the fields for creating a new product.
// The category rule is registered by the API handler and checks membership
// in the fixed catalog category list.
type ProductCreateDto struct {
	Name        string `json:"name"        validate:"required,min=3,max=100"`
	Category    string `json:"category"    validate:"required,category"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	Quantity    int32  `json:"quantity"    validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// ProductDto represents a product in API payloads.
type ProductDto struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"        validate:"required,min=3,max=100"`
	Category    string `json:"category"    validate:"required,category"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	Quantity    int32  `json:"quantity"    validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

// PageDto is one page of the filtered catalog.
type PageDto struct {
	Items      []ProductDto `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	TotalItems int          `json:"total_items"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(id int64) (*ProductDto, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return toDto(product), nil
}

// FindPage filters the catalog by spec and returns the requested page.
func (s *Service) FindPage(spec query.Spec, page int) (*PageDto, error) {
	filtered := query.Apply(s.store.List(), spec)
	window := query.Paginate(filtered, page)

	items := make([]ProductDto, len(window.Items))
	for i, p := range window.Items {
		items[i] = *toDto(p)
	}
	return &PageDto{
		Items:      items,
		Page:       window.Number,
		TotalPages: window.TotalPages,
		TotalItems: window.TotalItems,
	}, nil
}

// Create adds a new product and returns it as a ProductDto.
func (s *Service) Create(product ProductCreateDto) (*ProductDto, error) {
	stored := s.store.Add(catalog.Product{
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Description: product.Description,
	})
	return toDto(stored), nil
}

// Update replaces an existing product's fields and returns the result.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(product ProductDto) (*ProductDto, error) {
	if _, ok := s.store.Get(product.ID); !ok {
		return nil, ErrProductNotFound
	}
	updated := catalog.Product{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Description: product.Description,
	}
	s.store.Update(updated)
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(id int64) error {
	if _, ok := s.store.Get(id); !ok {
		return ErrProductNotFound
	}
	s.store.Remove(id)
	return nil
}

// toDto converts a catalog.Product to a ProductDto.
func toDto(product catalog.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Description: product.Description,
	}
}
