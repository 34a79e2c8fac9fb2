package dto

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID   string          `json:"product_id"`
	VariantKey  string          `json:"variant_key"`
	DisplayName string          `json:"display_name"`
	Category    string          `json:"category"`
	ImageRef    string          `json:"image_ref"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

func (r AddItemRequest) ToCartItem() model.CartItem {
	return model.CartItem{
		ProductID:   r.ProductID,
		VariantKey:  r.VariantKey,
		DisplayName: r.DisplayName,
		Category:    r.Category,
		ImageRef:    r.ImageRef,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
	}
}

type UpdateQuantityRequest struct {
	ProductID  string `json:"product_id"`
	VariantKey string `json:"variant_key"`
	Delta      int    `json:"delta"`
}

type CartResponse struct {
	SessionID      string           `json:"session_id"`
	Items          []model.CartItem `json:"items"`
	TotalItemCount int              `json:"total_item_count"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
}

type BeginSessionResponse struct {
	SessionID string `json:"session_id"`
}
