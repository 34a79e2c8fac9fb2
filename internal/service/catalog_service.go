package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/db"
)

var (
	ErrSchoolNotFound  = errors.New("school not found")
	ErrProductNotFound = errors.New("product not found")
)

type ICatalogService interface {
	GetSchools(ctx context.Context) ([]model.School, error)
	GetSchool(ctx context.Context, id uint) (*model.School, error)
	CreateSchool(ctx context.Context, school *model.School) error
	UpdateSchool(ctx context.Context, school *model.School) error
	DeleteSchool(ctx context.Context, id uint) error

	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetProductsBySchool(ctx context.Context, schoolID uint) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error

	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	GetSizes(ctx context.Context) ([]model.Size, error)
	CreateSize(ctx context.Context, size *model.Size) error
	DeleteSize(ctx context.Context, id uint) error
}

// CatalogService 學校/商品/主檔維護
type CatalogService struct {
	schoolRepo  db.ISchoolRepository
	productRepo db.IProductRepository
}

func NewCatalogService(schoolRepo db.ISchoolRepository, productRepo db.IProductRepository) *CatalogService {
	if schoolRepo == nil {
		panic("catalog service dependency schoolRepo is nil")
	}
	if productRepo == nil {
		panic("catalog service dependency productRepo is nil")
	}
	return &CatalogService{schoolRepo: schoolRepo, productRepo: productRepo}
}

func (s *CatalogService) GetSchools(ctx context.Context) ([]model.School, error) {
	return s.schoolRepo.GetAllSchools(ctx)
}

func (s *CatalogService) GetSchool(ctx context.Context, id uint) (*model.School, error) {
	school, err := s.schoolRepo.GetSchoolByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}
	return school, nil
}

func (s *CatalogService) CreateSchool(ctx context.Context, school *model.School) error {
	return s.schoolRepo.CreateSchool(ctx, school)
}

func (s *CatalogService) UpdateSchool(ctx context.Context, school *model.School) error {
	return s.schoolRepo.UpdateSchool(ctx, school)
}

func (s *CatalogService) DeleteSchool(ctx context.Context, id uint) error {
	return s.schoolRepo.DeleteSchool(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) GetProductsBySchool(ctx context.Context, schoolID uint) ([]model.Product, error) {
	return s.productRepo.GetProductsBySchool(ctx, schoolID)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.productRepo.CreateProduct(ctx, product)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.productRepo.UpdateProduct(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.productRepo.DeleteProduct(ctx, id)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.schoolRepo.GetAllCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.schoolRepo.CreateCategory(ctx, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.schoolRepo.DeleteCategory(ctx, id)
}

func (s *CatalogService) GetSizes(ctx context.Context) ([]model.Size, error) {
	return s.schoolRepo.GetAllSizes(ctx)
}

func (s *CatalogService) CreateSize(ctx context.Context, size *model.Size) error {
	return s.schoolRepo.CreateSize(ctx, size)
}

func (s *CatalogService) DeleteSize(ctx context.Context, id uint) error {
	return s.schoolRepo.DeleteSize(ctx, id)
}

var _ ICatalogService = (*CatalogService)(nil)
