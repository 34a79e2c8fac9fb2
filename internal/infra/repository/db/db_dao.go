package db

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// InitMigrate 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Category{},
		&model.Size{},
		&model.Product{},
		&model.Order{},
		&model.OrderLineItem{},
	)
}
