package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_schoolshop", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_line_items")
	suite.db.Exec("DELETE FROM orders")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createTestOrder(school string) *model.Order {
	order := &model.Order{
		OrderID:      uuid.New(),
		CustomerName: "Anna Muster",
		ParentName:   "Maria Muster",
		Phone:        "0664 1234567",
		Street:       "Hauptstrasse 1",
		City:         "Linz",
		PostalCode:   "4020",
		School:       school,
		OrderDate:    time.Now().UTC(),
		Status:       model.OrderStatusNew,
		LineItems: []model.OrderLineItem{
			{ProductName: "T-Shirt", Category: "Oberteile", Size: "M", Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
			{ProductName: "Hose", Category: "Unterteile", Size: "L", Quantity: 1, UnitPrice: decimal.RequireFromString("39.99")},
		},
	}
	order.RecalculateAmount()
	return order
}

func (suite *OrderRepoTestSuite) TestCreateOrder() {
	order := suite.createTestOrder("HLW Auhof")

	err := suite.orderRepo.CreateOrder(context.Background(), order)

	require.NoError(suite.T(), err)
	require.False(suite.T(), order.CreatedAt.IsZero())
}

func (suite *OrderRepoTestSuite) TestGetOrderByID() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	foundOrder, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), foundOrder)
	require.Equal(suite.T(), order.CustomerName, foundOrder.CustomerName)
	require.True(suite.T(), order.Amount.Equal(foundOrder.Amount))
	// 品項要跟著preload回來
	require.Len(suite.T(), foundOrder.LineItems, 2)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID_NotFound() {
	foundOrder, err := suite.orderRepo.GetOrderByID(context.Background(), uuid.New().String())

	require.NoError(suite.T(), err)
	require.Nil(suite.T(), foundOrder)
}

func (suite *OrderRepoTestSuite) TestGetOrdersBySchool() {
	ctx := context.Background()
	suite.orderRepo.CreateOrder(ctx, suite.createTestOrder("HLW Auhof"))
	suite.orderRepo.CreateOrder(ctx, suite.createTestOrder("HLW Auhof"))
	suite.orderRepo.CreateOrder(ctx, suite.createTestOrder("HLW Perg"))

	foundOrders, err := suite.orderRepo.GetOrdersBySchool(ctx, "HLW Auhof")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), foundOrders, 2)
}

func (suite *OrderRepoTestSuite) TestGetAllOrders() {
	ctx := context.Background()
	suite.orderRepo.CreateOrder(ctx, suite.createTestOrder("HLW Auhof"))
	suite.orderRepo.CreateOrder(ctx, suite.createTestOrder("HLW Perg"))

	allOrders, err := suite.orderRepo.GetAllOrders(ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), allOrders, 2)
	require.Len(suite.T(), allOrders[0].LineItems, 2)
}

func (suite *OrderRepoTestSuite) TestUpdateOrder() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	order.CustomerName = "Berta Muster"
	err := suite.orderRepo.UpdateOrder(ctx, order)
	require.NoError(suite.T(), err)

	updatedOrder, _ := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())
	require.Equal(suite.T(), "Berta Muster", updatedOrder.CustomerName)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	err := suite.orderRepo.UpdateOrderStatus(ctx, order.OrderID.String(), model.OrderStatusShipped)
	require.NoError(suite.T(), err)

	updatedOrder, _ := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())
	require.Equal(suite.T(), model.OrderStatusShipped, updatedOrder.Status)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderAmount() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	err := suite.orderRepo.UpdateOrderAmount(ctx, order.OrderID.String(), decimal.RequireFromString("99.99"))
	require.NoError(suite.T(), err)

	updatedOrder, _ := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())
	require.True(suite.T(), decimal.RequireFromString("99.99").Equal(updatedOrder.Amount))
}

func (suite *OrderRepoTestSuite) TestDeleteOrder() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	err := suite.orderRepo.DeleteOrder(ctx, order.OrderID.String())
	require.NoError(suite.T(), err)

	// 驗證軟刪除
	foundOrder, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), foundOrder)
}

func (suite *OrderRepoTestSuite) TestHardDeleteOrder() {
	ctx := context.Background()
	order := suite.createTestOrder("HLW Auhof")
	suite.orderRepo.CreateOrder(ctx, order)

	err := suite.orderRepo.HardDeleteOrder(ctx, order.OrderID.String())
	require.NoError(suite.T(), err)

	foundOrder, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID.String())
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), foundOrder)
}
