package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/db"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserEmailTaken = errors.New("user email already taken")
)

type IUserService interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type UserService struct {
	userRepo db.IUserRepository
}

func NewUserService(userRepo db.IUserRepository) *UserService {
	if userRepo == nil {
		panic("user service dependency userRepo is nil")
	}
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *model.User) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, user.UserEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserEmailTaken
	}
	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, user *model.User) error {
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.DeleteUser(ctx, id)
}

var _ IUserService = (*UserService)(nil)
