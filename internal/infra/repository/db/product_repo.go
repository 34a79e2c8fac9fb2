package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"gorm.io/gorm"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductsBySchool(ctx context.Context, schoolID uint) ([]model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Preload("Schools").First(&product, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsBySchool 商店頁面依學校列出商品
func (s *ProductRepo) GetProductsBySchool(ctx context.Context, schoolID uint) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).
		Joins("JOIN school_products ON school_products.product_product_id = products.product_id").
		Where("school_products.school_school_id = ?", schoolID).
		Find(&products).Error
	return products, err
}

func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Preload("Schools").Find(&products).Error
	return products, err
}

func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", id).Error
}

var _ IProductRepository = (*ProductRepo)(nil)
