package event

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/shopspring/decimal"
)

// OrderPlacedEvent 結帳完成建立訂單
type OrderPlacedEvent struct {
	BaseEvent
	School    string                `json:"school"`
	Amount    decimal.Decimal       `json:"amount"`
	LineItems []model.OrderLineItem `json:"lineItems"`
}

func NewOrderPlacedEvent(order *model.Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseEvent: *NewBaseEvent(order.OrderID.String(), OrderPlacedEventName),
		School:    order.School,
		Amount:    order.Amount,
		LineItems: order.LineItems,
	}
}

func (e *OrderPlacedEvent) Type() EventType {
	return OrderPlacedEventName
}

// OrderStatusChangedEvent 後台更新訂單狀態
type OrderStatusChangedEvent struct {
	BaseEvent
	OldStatus model.OrderStatus `json:"oldStatus"`
	NewStatus model.OrderStatus `json:"newStatus"`
}

func NewOrderStatusChangedEvent(orderID string, oldStatus, newStatus model.OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseEvent: *NewBaseEvent(orderID, OrderStatusChangedEventName),
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

func (e *OrderStatusChangedEvent) Type() EventType {
	return OrderStatusChangedEventName
}

// OrderAmountChangedEvent 編輯品項後重算訂單金額
type OrderAmountChangedEvent struct {
	BaseEvent
	OldAmount decimal.Decimal `json:"oldAmount"`
	NewAmount decimal.Decimal `json:"newAmount"`
}

func NewOrderAmountChangedEvent(orderID string, oldAmount, newAmount decimal.Decimal) *OrderAmountChangedEvent {
	return &OrderAmountChangedEvent{
		BaseEvent: *NewBaseEvent(orderID, OrderAmountChangedEventName),
		OldAmount: oldAmount,
		NewAmount: newAmount,
	}
}

func (e *OrderAmountChangedEvent) Type() EventType {
	return OrderAmountChangedEventName
}
