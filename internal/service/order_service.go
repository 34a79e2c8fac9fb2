package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/event"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/producer"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotExist = errors.New("order is not exist")
)

// OrderEventJournal 訂單事件日誌，eventdb實作
type OrderEventJournal interface {
	AppendOrderEvent(ctx context.Context, evt event.Event) error
}

// CheckoutInfo 結帳表單的客戶資料
type CheckoutInfo struct {
	CustomerName string
	ParentName   string
	Phone        string
	Street       string
	City         string
	PostalCode   string
	School       string
}

type IOrderService interface {
	Checkout(ctx context.Context, sessionID uuid.UUID, info CheckoutInfo) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrdersBySchool(ctx context.Context, school string) ([]model.Order, error)
	UpdateOrderLineItems(ctx context.Context, orderID string, items []model.OrderLineItem) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	cartService ICartService
	journal     OrderEventJournal
	producer    producer.Producer
	logger      *zerolog.Logger
}

func NewOrderService(orderRepo db.IOrderRepository, cartService ICartService, journal OrderEventJournal, eventProducer producer.Producer, logger *zerolog.Logger) *OrderService {
	if orderRepo == nil {
		panic("order service dependency orderRepo is nil")
	}
	if cartService == nil {
		panic("order service dependency cartService is nil")
	}
	return &OrderService{
		orderRepo:   orderRepo,
		cartService: cartService,
		journal:     journal,
		producer:    eventProducer,
		logger:      logger,
	}
}

// Checkout 將session購物車轉成訂單
// 訂單建立成功後才清空購物車，事件發布失敗不影響訂單本身
func (o *OrderService) Checkout(ctx context.Context, sessionID uuid.UUID, info CheckoutInfo) (*model.Order, error) {
	items, err := o.cartService.GetItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &model.Order{
		OrderID:      uuid.New(),
		CustomerName: info.CustomerName,
		ParentName:   info.ParentName,
		Phone:        info.Phone,
		Street:       info.Street,
		City:         info.City,
		PostalCode:   info.PostalCode,
		School:       info.School,
		OrderDate:    time.Now().UTC(),
		Status:       model.OrderStatusNew,
	}
	for _, item := range items {
		order.LineItems = append(order.LineItems, model.OrderLineItem{
			OrderID:     order.OrderID,
			ProductName: item.DisplayName,
			Category:    item.Category,
			Size:        item.VariantKey,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ImageRef:    item.ImageRef,
		})
	}
	order.RecalculateAmount()

	if err := o.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := o.cartService.ClearCart(ctx, sessionID); err != nil {
		o.logError(err, "clear cart after checkout failed")
	}

	o.publishEvent(ctx, event.NewOrderPlacedEvent(order))
	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotExist
	}
	return order, nil
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx)
}

func (o *OrderService) GetOrdersBySchool(ctx context.Context, school string) ([]model.Order, error) {
	return o.orderRepo.GetOrdersBySchool(ctx, school)
}

// UpdateOrderLineItems 後台編輯訂單品項
// 品項異動後以decimal重算總額，金額有變時發布事件
func (o *OrderService) UpdateOrderLineItems(ctx context.Context, orderID string, items []model.OrderLineItem) (*model.Order, error) {
	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldAmount := order.Amount
	order.LineItems = items
	for i := range order.LineItems {
		order.LineItems[i].OrderID = order.OrderID
	}
	order.RecalculateAmount()

	if err := o.orderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	if !oldAmount.Equal(order.Amount) {
		o.publishEvent(ctx, event.NewOrderAmountChangedEvent(orderID, oldAmount, order.Amount))
	}
	return order, nil
}

func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == status {
		return nil
	}

	if err := o.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}

	o.publishEvent(ctx, event.NewOrderStatusChangedEvent(orderID, order.Status, status))
	return nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	return o.orderRepo.DeleteOrder(ctx, orderID)
}

// HandleOrderStatusChanged 外部系統經kafka回報的狀態異動
func (o *OrderService) HandleOrderStatusChanged(ctx context.Context, evt *event.OrderStatusChangedEvent) error {
	return o.orderRepo.UpdateOrderStatus(ctx, evt.AggregateID, evt.NewStatus)
}

// publishEvent 次要事件發布，失敗只記錄，交由後續程序處理
func (o *OrderService) publishEvent(ctx context.Context, evt event.Event) {
	if o.journal != nil {
		if err := o.journal.AppendOrderEvent(ctx, evt); err != nil {
			o.logError(err, "append order event failed")
		}
	}
	if o.producer != nil {
		if err := o.producer.ProduceOrderEvent(ctx, evt); err != nil {
			o.logError(err, "produce order event failed")
		}
	}
}

func (o *OrderService) logError(err error, msg string) {
	if o.logger != nil {
		o.logger.Error().Err(err).Msg(msg)
	}
}

var _ IOrderService = (*OrderService)(nil)
