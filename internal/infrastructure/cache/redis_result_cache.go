package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/redis/go-redis/v9"
)

// RedisResultCache implements ResultCache using Redis. Suitable for
// distributed deployments where multiple instances share lookup results.
type RedisResultCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisCacheConfig holds Redis connection configuration
type RedisCacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisResultCache creates a new Redis-based result cache with a TTL in
// whole seconds
func NewRedisResultCache(cfg RedisCacheConfig, keyPrefix string, ttlSeconds int) (*RedisResultCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisResultCacheWithClient(client, keyPrefix, ttlSeconds), nil
}

// NewRedisResultCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisResultCacheWithClient(client *redis.Client, keyPrefix string, ttlSeconds int) *RedisResultCache {
	if keyPrefix == "" {
		keyPrefix = "als:lookup"
	}
	return &RedisResultCache{
		client:    client,
		keyPrefix: keyPrefix + ":",
		ttl:       time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the cached value, or nil when absent or expired. Redis
// handles expiry itself, so expired keys read as absent.
func (c *RedisResultCache) Get(ctx context.Context, key string) (*string, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache key: %w", err)
	}
	return &value, nil
}

// Set stores a value under a new key using SETNX; a live key fails
func (c *RedisResultCache) Set(ctx context.Context, key, value string) error {
	ok, err := c.client.SetNX(ctx, c.keyPrefix+key, value, c.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to set cache key: %w", err)
	}
	if !ok {
		return directory.NewCacheKeyExistsError(key)
	}
	return nil
}

// Delete removes a key; idempotent
func (c *RedisResultCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key: %w", err)
	}
	return nil
}

// Destroy removes all keys under this cache's prefix and closes the client
func (c *RedisResultCache) Destroy(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisResultCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisResultCache implements directory.ResultCache
var _ directory.ResultCache = (*RedisResultCache)(nil)
