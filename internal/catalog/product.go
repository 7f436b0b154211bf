// Package catalog defines the product domain model shared by the store,
// the list projection and the web layers.
package catalog

import "errors"

// Product-specific validation errors.
var (
	// ErrProductIDInvalid is returned when a product ID is zero or negative.
	ErrProductIDInvalid = errors.New("product ID must be positive")

	// ErrProductNameEmpty is returned when a product name is blank.
	ErrProductNameEmpty = errors.New("product name cannot be blank")

	// ErrProductCategoryUnknown is returned when a category is not one of the
	// fixed labels.
	ErrProductCategoryUnknown = errors.New("unknown product category")

	// ErrProductPriceInvalid is returned when a price is zero or negative.
	ErrProductPriceInvalid = errors.New("product price must be positive")

	// ErrProductQuantityInvalid is returned when a quantity is zero or negative.
	ErrProductQuantityInvalid = errors.New("product quantity must be positive")

	// ErrProductDescriptionEmpty is returned when a description is blank.
	ErrProductDescriptionEmpty = errors.New("product description cannot be blank")
)

// Product is a single catalog entry. IDs are assigned by the store, are
// strictly increasing and are never reused within a process lifetime.
// Price is in Vietnamese đồng, which has no minor unit.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Quantity    int32  `json:"quantity"`
	Description string `json:"description"`
}

// categories is the closed set of category labels. The UI, the form
// validators and the persistence shape check all refer to this list.
var categories = [5]string{
	"Điện tử",
	"Thời trang",
	"Gia dụng",
	"Sách",
	"Đồ chơi",
}

// Categories returns the fixed category labels in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories[:])
	return out
}

// IsCategory reports whether label is one of the fixed category labels.
func IsCategory(label string) bool {
	for _, c := range categories {
		if c == label {
			return true
		}
	}
	return false
}

// Validate checks that the product is structurally sound. It is used by the
// persistence adapter to reject malformed stored payloads; form-level rules
// (minimum name length, text trimming) live in the form package.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return ErrProductIDInvalid
	}
	if p.Name == "" {
		return ErrProductNameEmpty
	}
	if !IsCategory(p.Category) {
		return ErrProductCategoryUnknown
	}
	if p.Price <= 0 {
		return ErrProductPriceInvalid
	}
	if p.Quantity <= 0 {
		return ErrProductQuantityInvalid
	}
	if p.Description == "" {
		return ErrProductDescriptionEmpty
	}
	return nil
}
