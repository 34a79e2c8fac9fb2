package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/schoolshop/internal/cart"
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/redis_repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotExist = errors.New("cart session is not exist")
)

type ICartService interface {
	BeginSession(ctx context.Context) (uuid.UUID, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
	AddItem(ctx context.Context, sessionID uuid.UUID, item model.CartItem) error
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, productID, variantKey string, delta int) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID, variantKey string) error
	ClearCart(ctx context.Context, sessionID uuid.UUID) error
	GetItems(ctx context.Context, sessionID uuid.UUID) ([]model.CartItem, error)
	GetTotalItemCount(ctx context.Context, sessionID uuid.UUID) (int, error)
	GetSubtotal(ctx context.Context, sessionID uuid.UUID) (decimal.Decimal, error)
}

// CartService 每個session一個購物車
// 記憶體內的Store為主，redis快照為輔，server重啟後可由快照還原
type CartService struct {
	sessions  *cart.SessionManager
	cartCache redis_repo.ICartCache
}

func NewCartService(sessions *cart.SessionManager, cartCache redis_repo.ICartCache) *CartService {
	if sessions == nil {
		panic("cart service dependency sessions is nil")
	}
	return &CartService{sessions: sessions, cartCache: cartCache}
}

func (s *CartService) BeginSession(ctx context.Context) (uuid.UUID, error) {
	sessionID, store := s.sessions.Begin()
	if err := s.snapshot(ctx, sessionID, store); err != nil {
		return uuid.UUID{}, err
	}
	return sessionID, nil
}

func (s *CartService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	s.sessions.End(sessionID)
	if s.cartCache != nil {
		return s.cartCache.Delete(ctx, sessionID)
	}
	return nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID uuid.UUID, item model.CartItem) error {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	store.AddItem(item)
	return s.snapshot(ctx, sessionID, store)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, productID, variantKey string, delta int) error {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	store.UpdateQuantity(productID, variantKey, delta)
	return s.snapshot(ctx, sessionID, store)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID, variantKey string) error {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	store.RemoveItem(productID, variantKey)
	return s.snapshot(ctx, sessionID, store)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID uuid.UUID) error {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return err
	}
	store.Clear()
	return s.snapshot(ctx, sessionID, store)
}

func (s *CartService) GetItems(ctx context.Context, sessionID uuid.UUID) ([]model.CartItem, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.Items(), nil
}

func (s *CartService) GetTotalItemCount(ctx context.Context, sessionID uuid.UUID) (int, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return store.TotalItemCount(), nil
}

func (s *CartService) GetSubtotal(ctx context.Context, sessionID uuid.UUID) (decimal.Decimal, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return store.Subtotal(), nil
}

// store 取得session的購物車，記憶體沒有時嘗試由redis快照還原
func (s *CartService) store(ctx context.Context, sessionID uuid.UUID) (*cart.Store, error) {
	if store := s.sessions.Get(sessionID); store != nil {
		return store, nil
	}

	if s.cartCache == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotExist, sessionID)
	}

	snapshot, err := s.cartCache.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotExist, sessionID)
	}

	store := cart.NewStoreFromItems(snapshot.Items)
	s.sessions.Attach(sessionID, store)
	return store, nil
}

func (s *CartService) snapshot(ctx context.Context, sessionID uuid.UUID, store *cart.Store) error {
	if s.cartCache == nil {
		return nil
	}
	return s.cartCache.Save(ctx, &model.Cart{SessionID: sessionID, Items: store.Items()})
}

var _ ICartService = (*CartService)(nil)
