package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/abgdnv/catalog/internal/catalog"
)

// PageSize is the fixed number of products per page.
const PageSize = 6

// Apply filters products by the spec and returns the survivors in input
// order. Each criterion is independent, so applying them in any order or
// in separate passes yields the same result. Name matching is a
// case-insensitive substring check with a simple lowercase fold; no locale
// collation, no diacritic normalization. Price bounds are inclusive, and a
// bound that does not parse to a finite number counts as unset.
func Apply(products []catalog.Product, spec Spec) []catalog.Product {
	needle := strings.ToLower(spec.Query)
	matchName := strings.TrimSpace(spec.Query) != ""
	min, hasMin := parseBound(spec.Min)
	max, hasMax := parseBound(spec.Max)

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if matchName && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if hasMin && float64(p.Price) < min {
			continue
		}
		if hasMax && float64(p.Price) > max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// parseBound interprets a raw min/max parameter. Anything that is not a
// finite number (including "NaN" and "inf", which strconv accepts) is
// treated as unset rather than rejected.
func parseBound(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// TotalPages returns the page count for n items, never less than 1 even
// when the list is empty.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Page is one window of the filtered list together with the pagination
// facts a view needs.
type Page struct {
	Items      []catalog.Product
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices items for the requested 1-based page. It does not clamp:
// a page outside [1, TotalPages] yields empty Items, and keeping the page
// in range is the caller's responsibility (views reset to page 1 on filter
// changes and clamp prev/next navigation).
func Paginate(items []catalog.Product, page int) Page {
	start := (page - 1) * PageSize
	var window []catalog.Product
	if start >= 0 && start < len(items) {
		end := start + PageSize
		if end > len(items) {
			end = len(items)
		}
		window = items[start:end]
	}
	return Page{
		Items:      window,
		Number:     page,
		TotalPages: TotalPages(len(items)),
		TotalItems: len(items),
	}
}
