package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

const redisKeyPrefix = "cart:"

// RedisStore persists carts in Redis, one JSON-serialized item list per
// member under "cart:<memberID>"
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed cart store. addr may be a
// "redis://..." URL or a plain "host:port"; the connection is verified
// with a ping before the store is returned.
func NewRedisStore(ctx context.Context, addr string, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func (r *RedisStore) Load(ctx context.Context, memberID string) ([]domain.LineItem, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+memberID).Result()
	if err == redis.Nil {
		return []domain.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to parse persisted cart: %w", err)
	}
	return items, nil
}

func (r *RedisStore) Save(ctx context.Context, memberID string, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+memberID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, memberID string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+memberID).Err(); err != nil {
		return fmt.Errorf("redis DEL error: %w", err)
	}
	return nil
}

// Close releases the underlying Redis client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
