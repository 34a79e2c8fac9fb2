package model

import (
	"github.com/shopspring/decimal"
)

// School 學校主檔
type School struct {
	SchoolID uint      `json:"school_id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null;type:varchar(100);unique"`
	City     string    `json:"city" gorm:"type:varchar(100)"`
	Products []Product `json:"products" gorm:"many2many:school_products"`
	BaseModel
}

// Product 商品主檔
// Sizes 為該商品可選尺寸，逗號分隔儲存
type Product struct {
	ProductID   uint            `json:"product_id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null;type:varchar(100)"`
	Price       decimal.Decimal `json:"price" gorm:"not null;type:decimal(10,2)"`
	Category    string          `json:"category" gorm:"not null;type:varchar(50)"`
	Sizes       string          `json:"sizes" gorm:"type:varchar(200)"`
	Description string          `json:"description" gorm:"type:text"`
	ImageRef    string          `json:"image_ref" gorm:"type:varchar(500)"`
	Schools     []School        `json:"schools" gorm:"many2many:school_products"`
	BaseModel
}

// Category 分類主檔，後台維護
type Category struct {
	CategoryID uint   `json:"category_id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null;type:varchar(50);unique"`
	BaseModel
}

// Size 尺寸主檔，後台維護
type Size struct {
	SizeID uint   `json:"size_id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null;type:varchar(20);unique"`
	BaseModel
}
