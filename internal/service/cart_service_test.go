package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/schoolshop/internal/cart"
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartItem(productID, variantKey string, quantity int, price string) model.CartItem {
	return model.CartItem{
		ProductID:   productID,
		VariantKey:  variantKey,
		DisplayName: "T-Shirt",
		Category:    "Oberteile",
		ImageRef:    "/placeholder.svg",
		UnitPrice:   decimal.RequireFromString(price),
		Quantity:    quantity,
	}
}

func TestCartServiceAddAndGet(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCartCache()
	svc := NewCartService(cart.NewSessionManager(), cache)

	sessionID, err := svc.BeginSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 2, "19.99")))
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 1, "19.99")))

	items, err := svc.GetItems(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	count, err := svc.GetTotalItemCount(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	subtotal, err := svc.GetSubtotal(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "59.97", subtotal.StringFixed(2))
}

func TestCartServiceUnknownSessionReturnsErr(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(cart.NewSessionManager(), nil)

	_, err := svc.GetItems(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotExist)

	err = svc.AddItem(ctx, uuid.New(), newTestCartItem("1", "M", 1, "10"))
	assert.ErrorIs(t, err, ErrSessionNotExist)
}

func TestCartServiceMutationWritesSnapshot(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCartCache()
	svc := NewCartService(cart.NewSessionManager(), cache)

	sessionID, err := svc.BeginSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 2, "10")))

	snapshot, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
}

func TestCartServiceRestoresFromSnapshot(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCartCache()
	sessionID := uuid.New()
	require.NoError(t, cache.Save(ctx, &model.Cart{
		SessionID: sessionID,
		Items: []model.CartItem{
			newTestCartItem("1", "M", 2, "19.99"),
			newTestCartItem("2", "L", 1, "39.99"),
		},
	}))

	// 模擬server重啟後記憶體是空的
	svc := NewCartService(cart.NewSessionManager(), cache)

	items, err := svc.GetItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	subtotal, err := svc.GetSubtotal(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "79.97", subtotal.StringFixed(2))
}

func TestCartServiceUpdateQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(cart.NewSessionManager(), newFakeCartCache())

	sessionID, err := svc.BeginSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 2, "10")))
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("2", "L", 1, "10")))

	require.NoError(t, svc.UpdateQuantity(ctx, sessionID, "1", "M", -2))
	require.NoError(t, svc.RemoveItem(ctx, sessionID, "2", "L"))

	items, err := svc.GetItems(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartServiceEndSessionDeletesSnapshot(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCartCache()
	svc := NewCartService(cart.NewSessionManager(), cache)

	sessionID, err := svc.BeginSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 1, "10")))

	require.NoError(t, svc.EndSession(ctx, sessionID))

	_, err = cache.Get(ctx, sessionID)
	assert.Error(t, err)
	_, err = svc.GetItems(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotExist)
}

func TestCartServiceWorksWithoutCache(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(cart.NewSessionManager(), nil)

	sessionID, err := svc.BeginSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(ctx, sessionID, newTestCartItem("1", "M", 1, "10")))
	require.NoError(t, svc.ClearCart(ctx, sessionID))
	require.NoError(t, svc.EndSession(ctx, sessionID))
}
