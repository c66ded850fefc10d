package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// CacheService provides Redis caching with connection pooling. The client is
// constructed here and injected wherever caching is needed; cache failures
// are logged and swallowed so Redis downtime never fails a request.
type CacheService struct {
	logger *gecho.Logger
	config *structs.CacheConfig
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.CacheConfig) *CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	return &CacheService{
		logger: logger,
		config: cfg,
		client: client,
	}
}

// Get fetches and unmarshals a cached value into dest. Returns false when
// the key is absent or the cache is unavailable.
func (cs *CacheService) Get(ctx context.Context, key string, dest any) bool {
	raw, err := cs.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cs.logger.Warn("Cache get failed", gecho.Field("key", key), gecho.Field("error", err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		cs.logger.Warn("Cache entry is corrupt, deleting", gecho.Field("key", key))
		cs.client.Del(ctx, key)
		return false
	}

	return true
}

// Set marshals and stores a value under key with the given TTL.
func (cs *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		cs.logger.Warn("Cache set failed to marshal", gecho.Field("key", key), gecho.Field("error", err))
		return
	}

	if err := cs.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		cs.logger.Warn("Cache set failed", gecho.Field("key", key), gecho.Field("error", err))
	}
}

// Delete removes keys from the cache.
func (cs *CacheService) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cs.client.Del(ctx, keys...).Err(); err != nil {
		cs.logger.Warn("Cache delete failed", gecho.Field("keys", keys), gecho.Field("error", err))
	}
}

// Health pings Redis.
func (cs *CacheService) Health(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (cs *CacheService) Close() error {
	return cs.client.Close()
}
