package cart

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Store 單一session的購物車
// 不處理併發，一個session只會有一個邏輯持有者，隔離由SessionManager提供
type Store struct {
	items []model.CartItem
}

func NewStore() *Store {
	return &Store{items: make([]model.CartItem, 0)}
}

// NewStoreFromItems 由快照還原購物車，數量<=0的品項會被丟棄
func NewStoreFromItems(items []model.CartItem) *Store {
	s := NewStore()
	for _, item := range items {
		s.AddItem(item)
	}
	return s
}

// AddItem 加入品項
// 已存在相同 (ProductID, VariantKey) 時只累加數量，其餘欄位保留原值，
// 避免重複加入時用過期價格蓋掉原本的單價
// item.Quantity <= 0 視為no-op，不回傳錯誤
func (s *Store) AddItem(item model.CartItem) {
	if item.Quantity <= 0 {
		return
	}
	for i := range s.items {
		if s.items[i].Matches(item.ProductID, item.VariantKey) {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// UpdateQuantity 增減品項數量，下限為0，歸零即移除該品項
// 找不到品項時為no-op
func (s *Store) UpdateQuantity(productID, variantKey string, delta int) {
	for i := range s.items {
		if !s.items[i].Matches(productID, variantKey) {
			continue
		}
		quantity := s.items[i].Quantity + delta
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
		s.items[i].Quantity = quantity
		return
	}
}

// RemoveItem 移除品項，找不到時為no-op
func (s *Store) RemoveItem(productID, variantKey string) {
	for i := range s.items {
		if s.items[i].Matches(productID, variantKey) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear 清空購物車，結帳完成後呼叫
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Items 回傳加入順序排列的品項複本
func (s *Store) Items() []model.CartItem {
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItemCount 所有品項數量加總，購物車badge用
func (s *Store) TotalItemCount() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal 計算小計 sum(單價*數量)
func (s *Store) Subtotal() decimal.Decimal {
	subtotal := decimal.NewFromInt(0)
	for _, item := range s.items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}
