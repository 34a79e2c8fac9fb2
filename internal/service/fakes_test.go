package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/event"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/redis_repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeCartCache 記憶體版的購物車快照，模擬redis
type fakeCartCache struct {
	carts   map[uuid.UUID]*model.Cart
	saveErr error
}

func newFakeCartCache() *fakeCartCache {
	return &fakeCartCache{carts: make(map[uuid.UUID]*model.Cart)}
}

func (f *fakeCartCache) Save(ctx context.Context, cart *model.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)
	f.carts[cart.SessionID] = &model.Cart{SessionID: cart.SessionID, Items: items}
	return nil
}

func (f *fakeCartCache) Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error) {
	cart, ok := f.carts[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", redis_repo.ErrCartNotFound, sessionID)
	}
	return cart, nil
}

func (f *fakeCartCache) Delete(ctx context.Context, sessionID uuid.UUID) error {
	delete(f.carts, sessionID)
	return nil
}

func (f *fakeCartCache) Touch(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

var _ redis_repo.ICartCache = (*fakeCartCache)(nil)

// fakeOrderRepo 記憶體版的訂單repo
type fakeOrderRepo struct {
	orders    map[string]*model.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[order.OrderID.String()] = order
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) GetOrdersBySchool(ctx context.Context, school string) ([]model.Order, error) {
	var orders []model.Order
	for _, order := range f.orders {
		if order.School == school {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, order *model.Order) error {
	if _, ok := f.orders[order.OrderID.String()]; !ok {
		return errors.New("order not found")
	}
	f.orders[order.OrderID.String()] = order
	return nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) UpdateOrderAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	order, ok := f.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Amount = amount
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) HardDeleteOrder(ctx context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

// fakeEventSink 同時充當journal與producer，記錄收到的事件
type fakeEventSink struct {
	events []event.Event
	err    error
}

func (f *fakeEventSink) AppendOrderEvent(ctx context.Context, evt event.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func (f *fakeEventSink) ProduceOrderEvent(ctx context.Context, evt event.Event) error {
	return f.AppendOrderEvent(ctx, evt)
}

func (f *fakeEventSink) Close() error {
	return nil
}

func (f *fakeEventSink) eventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(f.events))
	for _, evt := range f.events {
		types = append(types, evt.Type())
	}
	return types
}
