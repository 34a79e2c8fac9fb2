package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem 購物車單一品項
// 同一個 (ProductID, VariantKey) 在購物車中只會有一筆
type CartItem struct {
	ProductID   string          `json:"product_id"`
	VariantKey  string          `json:"variant_key"` // size/variant選擇，與ProductID組成唯一鍵
	DisplayName string          `json:"display_name"`
	Category    string          `json:"category"`
	ImageRef    string          `json:"image_ref"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Matches 判斷是否為同一個購物車品項
func (i CartItem) Matches(productID, variantKey string) bool {
	return i.ProductID == productID && i.VariantKey == variantKey
}

// Cart 購物車快照，用於redis序列化
type Cart struct {
	SessionID uuid.UUID  `json:"session_id"`
	Items     []CartItem `json:"items"`
}
