// Package redis provides the Redis-backed cache repository
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrKeyNotFound is returned for missing keys
var ErrKeyNotFound = errors.New("key not found")

// CacheRepository implements the cache repository on go-redis
type CacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewClient builds a go-redis client from configuration and verifies
// connectivity before handing it out.
func NewClient(cfg config.CacheConfig, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}

// NewCacheRepository creates a new Redis cache repository
func NewCacheRepository(client *redis.Client, logger *zap.Logger) outbound.CacheRepository {
	return &CacheRepository{
		client: client,
		logger: logger.Named("redis-cache"),
	}
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		r.logger.Debug("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a value from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
