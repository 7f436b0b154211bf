package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		ID:          1,
		Name:        "Bàn Phím Cơ",
		Category:    "Điện tử",
		Price:       990000,
		Quantity:    7,
		Description: "Bàn phím cơ switch đỏ",
	}
}

func Test_Product_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(p *Product)
		expectError error
	}{
		{
			name:        "Success - well formed product",
			mutate:      func(_ *Product) {},
			expectError: nil,
		},
		{
			name:        "Error - zero ID",
			mutate:      func(p *Product) { p.ID = 0 },
			expectError: ErrProductIDInvalid,
		},
		{
			name:        "Error - negative ID",
			mutate:      func(p *Product) { p.ID = -3 },
			expectError: ErrProductIDInvalid,
		},
		{
			name:        "Error - blank name",
			mutate:      func(p *Product) { p.Name = "" },
			expectError: ErrProductNameEmpty,
		},
		{
			name:        "Error - unknown category",
			mutate:      func(p *Product) { p.Category = "Xe máy" },
			expectError: ErrProductCategoryUnknown,
		},
		{
			name:        "Error - zero price",
			mutate:      func(p *Product) { p.Price = 0 },
			expectError: ErrProductPriceInvalid,
		},
		{
			name:        "Error - zero quantity",
			mutate:      func(p *Product) { p.Quantity = 0 },
			expectError: ErrProductQuantityInvalid,
		},
		{
			name:        "Error - blank description",
			mutate:      func(p *Product) { p.Description = "" },
			expectError: ErrProductDescriptionEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			p := validProduct()
			tc.mutate(&p)
			// when
			err := p.Validate()
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Categories_Fixed(t *testing.T) {
	// given
	labels := Categories()

	// then
	assert.Len(t, labels, 5)
	assert.Contains(t, labels, "Sách")
	for _, label := range labels {
		assert.True(t, IsCategory(label))
	}
	assert.False(t, IsCategory(""))
	assert.False(t, IsCategory("sách"), "category match is exact, not case folded")

	// mutating the returned slice must not leak into the fixed set
	labels[0] = "Khác"
	assert.True(t, IsCategory("Điện tử"))
}

func Test_Seed_Shape(t *testing.T) {
	// given
	seed := Seed()

	// then
	require.Len(t, seed, 11)

	seen := make(map[int64]bool, len(seed))
	books := 0
	for i, p := range seed {
		require.NoError(t, p.Validate(), "seed item %d", i)
		assert.Equal(t, int64(i+1), p.ID, "seed IDs run 1..11 in list order")
		assert.False(t, seen[p.ID], "seed IDs are unique")
		seen[p.ID] = true
		if p.Category == "Sách" {
			books++
			assert.Less(t, p.Price, int64(200000))
		}
	}
	assert.Equal(t, 2, books, "exactly two seeded books")

	// Seed hands out copies, not the backing array
	seed[0].Name = "changed"
	assert.NotEqual(t, "changed", Seed()[0].Name)
}
