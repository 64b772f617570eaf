package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
)

// RedisCache stores product snapshots in Redis, keyed by product ID with a
// per-entry TTL. Expiration is handled by Redis itself; there is no explicit
// invalidation.
type RedisCache struct {
	redis *redis.Client
}

// NewRedisCache creates a product cache backed by the given Redis client
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{redis: client}
}

// Key returns the cache key for a product ID
func Key(productID int64) string {
	return fmt.Sprintf("product_%d", productID)
}

// Get retrieves a cached product snapshot.
// Returns ErrCacheMiss when the key does not exist or has expired.
func (c *RedisCache) Get(ctx context.Context, productID int64) (*domain.Product, error) {
	data, err := c.redis.Get(ctx, Key(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheMisses.Inc()
			return nil, domain.ErrCacheMiss
		}
		cacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		cacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("unmarshal cached product: %w", err)
	}

	cacheHits.Inc()
	return &product, nil
}

// SetIfAbsent stores the snapshot with the given TTL only when no unexpired
// entry exists for the product. SETNX is atomic on the Redis side, so a
// still-valid entry is never overwritten by a fresher snapshot.
func (c *RedisCache) SetIfAbsent(ctx context.Context, product *domain.Product, ttl time.Duration) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}

	data, err := json.Marshal(product)
	if err != nil {
		cacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("marshal product: %w", err)
	}

	if err := c.redis.SetNX(ctx, Key(product.ID), data, ttl).Err(); err != nil {
		cacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis setnx: %w", err)
	}

	return nil
}
