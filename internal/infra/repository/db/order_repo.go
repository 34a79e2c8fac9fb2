package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetOrdersBySchool(ctx context.Context, school string) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	UpdateOrderAmount(ctx context.Context, id string, amount decimal.Decimal) error
	DeleteOrder(ctx context.Context, id string) error
	HardDeleteOrder(ctx context.Context, id string) error
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單，不存在回傳nil
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("LineItems").First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據學校查詢訂單
func (s *OrderRepo) GetOrdersBySchool(ctx context.Context, school string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("LineItems").Where("school = ?", school).Find(&orders).Error
	return orders, err
}

// Read - 查詢所有訂單，商品彙總檢視的輸入
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("LineItems").Find(&orders).Error
	return orders, err
}

// Update - 更新訂單
func (s *OrderRepo) UpdateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", id).Update("status", status).Error
}

// Update - 更新訂單金額
func (s *OrderRepo) UpdateOrderAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", id).Update("amount", amount).Error
}

// Delete - 軟刪除訂單
func (s *OrderRepo) DeleteOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Order{}, "order_id = ?", id).Error
}

// Delete - 硬刪除訂單
func (s *OrderRepo) HardDeleteOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Unscoped().Delete(&model.Order{}, "order_id = ?", id).Error
}

var _ IOrderRepository = (*OrderRepo)(nil)
