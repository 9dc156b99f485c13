package services

import (
	"context"
	"testing"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartService(t *testing.T) (CartService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewCartService(repository.NewCartRepository(store)), store
}

func cheeseburger(quantity int) models.CartItem {
	return models.CartItem{ID: "burger1", Name: "Cheeseburger", Price: 599, Quantity: quantity, Category: "Burgers"}
}

func fries(quantity int) models.CartItem {
	return models.CartItem{ID: "side1", Name: "Fries", Price: 249, Quantity: quantity, Category: "Sides"}
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(1)))
	require.NoError(t, svc.AddItem(ctx, cheeseburger(2)))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1797), total)
}

func TestAddItemQuantitySummed(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	added := []int{1, 4, 2, 7}
	sum := 0
	for _, q := range added {
		require.NoError(t, svc.AddItem(ctx, fries(q)))
		sum += q
	}

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, sum, items[0].Quantity)
}

func TestAddItemCoercesQuantity(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -5, 1},
		{"positive kept", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, svc.Clear(ctx))
			require.NoError(t, svc.AddItem(ctx, fries(tt.quantity)))

			items, err := svc.Items(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Quantity)
		})
	}
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(2)))

	require.NoError(t, svc.UpdateQuantity(ctx, "burger1", -1))
	require.NoError(t, svc.UpdateQuantity(ctx, "burger1", -1))
	require.NoError(t, svc.UpdateQuantity(ctx, "burger1", -10))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity, "quantity never drops below 1 and the line is never removed")
}

func TestUpdateQuantityIncrement(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(1)))
	require.NoError(t, svc.UpdateQuantity(ctx, "burger1", 2))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, fries(2)))
	require.NoError(t, svc.UpdateQuantity(ctx, "nope", 5))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(1)))
	require.NoError(t, svc.AddItem(ctx, fries(1)))

	require.NoError(t, svc.RemoveItem(ctx, "burger1"))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "side1", items[0].ID)

	// Removing an absent id is a no-op.
	require.NoError(t, svc.RemoveItem(ctx, "burger1"))
	items, err = svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTotalSumsAllLines(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(2))) // 1198
	require.NoError(t, svc.AddItem(ctx, fries(3)))        // 747

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1945), total)
}

func TestClearEmptiesCart(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, cheeseburger(1)))
	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMalformedCartReadsAsEmpty(t *testing.T) {
	svc, store := setupCartService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyCartItems, []byte("{not json")))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// The cart is usable again after the bad value is overwritten.
	require.NoError(t, svc.AddItem(ctx, fries(1)))
	items, err = svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckoutDraftRoundTrip(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	draft := models.CheckoutDraft{Address: "12 High St", Phone: "0123456789", PickupDate: "2026-09-02"}
	require.NoError(t, svc.SaveDraft(ctx, draft))

	got, err := svc.Draft(ctx)
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}
