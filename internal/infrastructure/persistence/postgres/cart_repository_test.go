package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "goggles_shop/internal/domain/cart"
)

func TestCartRepository_MergeLine_FoldsRacingAdds(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	product := seedProduct(t, pool, "59.99", 50)
	sessionID := uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM cart_items WHERE session_id = $1;`, sessionID)
	})

	carts := NewCartRepository(pool)

	// Two adds of the same product carrying distinct line ids, the shape two
	// racing first adds produce. The second lands on the uniqueness target
	// and merges instead of failing.
	first, err := cartdomain.NewLine(sessionID, product.ID, 2)
	require.NoError(t, err)
	second, err := cartdomain.NewLine(sessionID, product.ID, 3)
	require.NoError(t, err)

	stored, err := carts.MergeLine(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)

	merged, err := carts.MergeLine(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	total, err := carts.TotalQuantity(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestCartRepository_MergeLine_CapsQuantity(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	product := seedProduct(t, pool, "59.99", 500)
	sessionID := uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM cart_items WHERE session_id = $1;`, sessionID)
	})

	carts := NewCartRepository(pool)

	line, err := cartdomain.NewLine(sessionID, product.ID, 80)
	require.NoError(t, err)
	_, err = carts.MergeLine(ctx, line)
	require.NoError(t, err)

	repeat, err := cartdomain.NewLine(sessionID, product.ID, 80)
	require.NoError(t, err)
	merged, err := carts.MergeLine(ctx, repeat)
	require.NoError(t, err)

	assert.Equal(t, cartdomain.MaxQuantity, merged.Quantity)
}
