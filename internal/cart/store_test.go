package cart

import (
	"testing"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(productID, variantKey string, quantity int, price string) model.CartItem {
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

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	store := NewStore()

	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("1", "M", 3, "10"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemKeepsOriginalPriceOnMerge(t *testing.T) {
	store := NewStore()

	store.AddItem(newTestItem("1", "M", 1, "19.99"))
	// 再次加入時帶了過期的價格，不能蓋掉原本的單價
	store.AddItem(newTestItem("1", "M", 1, "24.99"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemDifferentVariantIsSeparateLine(t *testing.T) {
	store := NewStore()

	store.AddItem(newTestItem("1", "M", 1, "10"))
	store.AddItem(newTestItem("1", "L", 1, "10"))
	store.AddItem(newTestItem("2", "M", 1, "10"))

	assert.Len(t, store.Items(), 3)
}

func TestAddItemNonPositiveQuantityIsNoop(t *testing.T) {
	store := NewStore()

	store.AddItem(newTestItem("1", "M", 0, "10"))
	store.AddItem(newTestItem("1", "M", -1, "10"))

	assert.Empty(t, store.Items())
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("1", "M", 3, "10"))

	store.UpdateQuantity("1", "M", -5)

	assert.Empty(t, store.Items())
}

func TestUpdateQuantityClampsBelowZero(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))

	store.UpdateQuantity("1", "M", -99)

	assert.Empty(t, store.Items())
}

func TestUpdateQuantityAdjustsMatchingLineOnly(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("1", "L", 2, "10"))

	store.UpdateQuantity("1", "M", 1)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))

	store.UpdateQuantity("99", "M", 1)
	store.UpdateQuantity("1", "XL", 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("2", "L", 1, "10"))

	store.RemoveItem("1", "M")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)

	// 重複移除為no-op
	store.RemoveItem("1", "M")
	assert.Len(t, store.Items(), 1)
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("2", "L", 1, "10"))

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItemCount())
	assert.True(t, store.Subtotal().IsZero())
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("3", "M", 1, "10"))
	store.AddItem(newTestItem("1", "L", 1, "10"))
	store.AddItem(newTestItem("2", "S", 1, "10"))
	store.AddItem(newTestItem("3", "M", 1, "10")) // merge不改變順序

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ProductID)
	assert.Equal(t, "1", items[1].ProductID)
	assert.Equal(t, "2", items[2].ProductID)
}

func TestTotalItemCount(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))
	store.AddItem(newTestItem("1", "L", 3, "10"))
	store.AddItem(newTestItem("2", "M", 1, "10"))

	assert.Equal(t, 6, store.TotalItemCount())
}

func TestSubtotalIsExactDecimal(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "19.99"))
	store.AddItem(newTestItem("2", "L", 1, "39.99"))

	// 19.99*2 + 39.99 = 79.97，不能有浮點誤差
	assert.Equal(t, "79.97", store.Subtotal().StringFixed(2))
	assert.True(t, store.Subtotal().Equal(decimal.RequireFromString("79.97")))
}

func TestNewStoreFromItemsDropsInvalidQuantities(t *testing.T) {
	items := []model.CartItem{
		newTestItem("1", "M", 2, "10"),
		newTestItem("2", "L", 0, "10"),
		newTestItem("1", "M", 3, "10"),
	}

	store := NewStoreFromItems(items)

	restored := store.Items()
	require.Len(t, restored, 1)
	assert.Equal(t, 5, restored[0].Quantity)
}

func TestItemsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.AddItem(newTestItem("1", "M", 2, "10"))

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 2, store.Items()[0].Quantity)
}
