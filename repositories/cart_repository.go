package repositories

import (
	"context"
	"log"
	"sync"
	"time"

	"esencia-shop/models"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "esencia:cart:"
	cartTTL       = 30 * 24 * time.Hour
)

// CartRepository is the durable per-browser slot behind the cart store.
// Load returns (nil, nil) when no cart has been persisted for the token.
// The slot is owned exclusively by the cart store; nothing else reads or
// writes these keys.
type CartRepository interface {
	Load(ctx context.Context, token string) ([]models.CartLine, error)
	Save(ctx context.Context, token string, items []models.CartLine) error
	Delete(ctx context.Context, token string) error
}

// NewCartRepository returns the Redis-backed slot, or an in-process one
// when Redis is unavailable. Memory carts do not survive a restart, which
// mirrors how the app degrades elsewhere when the cache is down.
func NewCartRepository() CartRepository {
	if models.RedisClient != nil {
		return &redisCartRepository{client: models.RedisClient}
	}
	log.Println("Redis unavailable, carts held in process memory")
	return NewMemoryCartRepository()
}

type redisCartRepository struct {
	client *redis.Client
}

func (r *redisCartRepository) Load(ctx context.Context, token string) ([]models.CartLine, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return models.DecodeCartDocument(data)
}

func (r *redisCartRepository) Save(ctx context.Context, token string, items []models.CartLine) error {
	data, err := models.EncodeCartDocument(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKeyPrefix+token, data, cartTTL).Err()
}

func (r *redisCartRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, cartKeyPrefix+token).Err()
}

// MemoryCartRepository keeps serialized cart documents in a map. It goes
// through the same encode/decode path as the Redis slot so persisted-form
// behavior is identical.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{slots: map[string][]byte{}}
}

func (r *MemoryCartRepository) Load(ctx context.Context, token string) ([]models.CartLine, error) {
	r.mu.RLock()
	data, ok := r.slots[token]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return models.DecodeCartDocument(data)
}

func (r *MemoryCartRepository) Save(ctx context.Context, token string, items []models.CartLine) error {
	data, err := models.EncodeCartDocument(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.slots[token] = data
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	delete(r.slots, token)
	r.mu.Unlock()
	return nil
}

// Put stores a raw payload in a slot, bypassing the encoder. Tests use it
// to plant corrupt documents.
func (r *MemoryCartRepository) Put(token string, data []byte) {
	r.mu.Lock()
	r.slots[token] = data
	r.mu.Unlock()
}

// Raw returns the exact bytes persisted for a token.
func (r *MemoryCartRepository) Raw(token string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.slots[token]
	return data, ok
}
