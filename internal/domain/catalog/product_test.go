package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(
		"Alpine Basic",
		"Entry-level goggles",
		decimal.RequireFromString("54.99"),
		"/images/goggles/alpine-basic.jpg",
		"Budget",
		"Clear",
		"Full Frame",
		25,
	)

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Alpine Basic", p.Name)
	assert.True(t, p.Available())
}

func TestNewProduct_Invalid(t *testing.T) {
	price := decimal.RequireFromString("54.99")

	_, err := NewProduct("", "", price, "", "", "", "", 1)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewProduct("Alpine Basic", "", decimal.RequireFromString("-1"), "", "", "", "", 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Alpine Basic", "", price, "", "", "", "", -1)
	assert.ErrorIs(t, err, ErrInvalidStock)
}

func TestProduct_Available(t *testing.T) {
	assert.True(t, Product{StockQuantity: 1}.Available())
	assert.False(t, Product{StockQuantity: 0}.Available())
}

func TestDefaultCatalog(t *testing.T) {
	products := DefaultCatalog()

	require.Len(t, products, 12)

	categories := map[string]int{}
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.True(t, p.Available())
		assert.True(t, p.Price.IsPositive())
		categories[p.Category]++
	}
	assert.Equal(t, map[string]int{"Budget": 3, "Mid-Range": 4, "Premium": 5}, categories)
}
