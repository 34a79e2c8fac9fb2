package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CartRepoError error

var ErrCartNotFound CartRepoError = errors.New("cart not found")

type ICartCache interface {
	Save(ctx context.Context, cart *model.Cart) error
	Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	Touch(ctx context.Context, sessionID uuid.UUID) error
}

// CartRepo 購物車快照快取
// 購物車階段只寫入redis，不寫入db，session結束或TTL到期即消失
type CartRepo struct {
	cartCache *redis.Client
	ttl       time.Duration
}

func NewCartRepo(cartCache *redis.Client, ttl time.Duration) *CartRepo {
	return &CartRepo{cartCache: cartCache, ttl: ttl}
}

func generateCartKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Save 儲存購物車快照，覆寫既有資料並重設TTL
func (r *CartRepo) Save(ctx context.Context, cart *model.Cart) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	err = r.cartCache.Set(ctx, generateCartKey(cart.SessionID), cartJSON, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Get 取得購物車快照，不存在回傳ErrCartNotFound
func (r *CartRepo) Get(ctx context.Context, sessionID uuid.UUID) (*model.Cart, error) {
	cartJSON, err := r.cartCache.Get(ctx, generateCartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrCartNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart model.Cart
	err = json.Unmarshal([]byte(cartJSON), &cart)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Delete 刪除購物車快照，結帳完成或session結束時呼叫
func (r *CartRepo) Delete(ctx context.Context, sessionID uuid.UUID) error {
	err := r.cartCache.Del(ctx, generateCartKey(sessionID)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// Touch 延長購物車TTL，使用者有操作時呼叫
func (r *CartRepo) Touch(ctx context.Context, sessionID uuid.UUID) error {
	// 只對存在的key延長，不存在不視為錯誤
	err := r.cartCache.Expire(ctx, generateCartKey(sessionID), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}

var _ ICartCache = (*CartRepo)(nil)
