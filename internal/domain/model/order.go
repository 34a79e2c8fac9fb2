package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus uint

/*
state:

	OrderStatusNew        uint = 0 // 新訂單
	OrderStatusInProgress uint = 1 // 處理中
	OrderStatusShipped    uint = 2 // 已出貨
	OrderStatusCompleted  uint = 3 // 已完成
*/
const (
	OrderStatusNew OrderStatus = iota
	OrderStatusInProgress
	OrderStatusShipped
	OrderStatusCompleted
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusNew:
		return "New"
	case OrderStatusInProgress:
		return "InProgress"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Order 一筆預購訂單，含客戶資料與訂購品項
type Order struct {
	OrderID      uuid.UUID       `json:"order_id" gorm:"type:uuid;primaryKey"`
	CustomerName string          `json:"customer_name" gorm:"not null;type:varchar(100)"`
	ParentName   string          `json:"parent_name" gorm:"type:varchar(100)"`
	Phone        string          `json:"phone" gorm:"type:varchar(50)"`
	Street       string          `json:"street" gorm:"type:varchar(200)"`
	City         string          `json:"city" gorm:"type:varchar(100)"`
	PostalCode   string          `json:"postal_code" gorm:"type:varchar(20)"`
	School       string          `json:"school" gorm:"not null;type:varchar(100);index"`
	OrderDate    time.Time       `json:"order_date" gorm:"not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"not null;type:decimal(10,2)"`
	Status       OrderStatus     `json:"status" gorm:"not null;default:0"`
	LineItems    []OrderLineItem `json:"line_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	BaseModel
}

// OrderLineItem 訂單品項
// ProductName 為彙總時的鍵值，非外鍵
type OrderLineItem struct {
	LineItemID  uint            `json:"line_item_id" gorm:"primaryKey"`
	OrderID     uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductName string          `json:"product_name" gorm:"not null;type:varchar(100)"`
	Category    string          `json:"category" gorm:"type:varchar(50)"`
	Size        string          `json:"size" gorm:"type:varchar(20)"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"not null;type:decimal(10,2)"`
	ImageRef    string          `json:"image_ref" gorm:"type:varchar(500)"`
}

// RecalculateAmount 以品項單價*數量重新計算訂單總額
// 編輯訂單品項後必須呼叫，金額一律使用decimal避免浮點誤差
func (o *Order) RecalculateAmount() {
	amount := decimal.NewFromInt(0)
	for _, item := range o.LineItems {
		amount = amount.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	o.Amount = amount
}
