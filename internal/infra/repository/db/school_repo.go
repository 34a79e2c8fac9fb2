package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"gorm.io/gorm"
)

type ISchoolRepository interface {
	CreateSchool(ctx context.Context, school *model.School) error
	GetSchoolByID(ctx context.Context, id uint) (*model.School, error)
	GetAllSchools(ctx context.Context) ([]model.School, error)
	UpdateSchool(ctx context.Context, school *model.School) error
	DeleteSchool(ctx context.Context, id uint) error

	// 分類/尺寸主檔
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	GetAllSizes(ctx context.Context) ([]model.Size, error)
	CreateSize(ctx context.Context, size *model.Size) error
	DeleteSize(ctx context.Context, id uint) error
}

// SchoolRepo 學校與分類/尺寸主檔
type SchoolRepo struct {
	db *DbDao
}

func NewSchoolRepo(db *DbDao) *SchoolRepo {
	return &SchoolRepo{db: db}
}

func (s *SchoolRepo) CreateSchool(ctx context.Context, school *model.School) error {
	return s.db.WithContext(ctx).Create(school).Error
}

func (s *SchoolRepo) GetSchoolByID(ctx context.Context, id uint) (*model.School, error) {
	var school model.School
	err := s.db.WithContext(ctx).Preload("Products").First(&school, "school_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (s *SchoolRepo) GetAllSchools(ctx context.Context) ([]model.School, error) {
	var schools []model.School
	err := s.db.WithContext(ctx).Find(&schools).Error
	return schools, err
}

func (s *SchoolRepo) UpdateSchool(ctx context.Context, school *model.School) error {
	return s.db.WithContext(ctx).Save(school).Error
}

func (s *SchoolRepo) DeleteSchool(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.School{}, "school_id = ?", id).Error
}

func (s *SchoolRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (s *SchoolRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *SchoolRepo) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Category{}, "category_id = ?", id).Error
}

func (s *SchoolRepo) GetAllSizes(ctx context.Context) ([]model.Size, error) {
	var sizes []model.Size
	err := s.db.WithContext(ctx).Find(&sizes).Error
	return sizes, err
}

func (s *SchoolRepo) CreateSize(ctx context.Context, size *model.Size) error {
	return s.db.WithContext(ctx).Create(size).Error
}

func (s *SchoolRepo) DeleteSize(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Size{}, "size_id = ?", id).Error
}

var _ ISchoolRepository = (*SchoolRepo)(nil)
