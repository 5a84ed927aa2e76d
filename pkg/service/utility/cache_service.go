package utility

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is the cache abstraction shared by the rendering and listing
// paths. Implementations treat a missing key as ("", nil), following the
// Redis convention.
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key ...string) error
	// Increment atomically increments a key's value.
	Increment(ctx context.Context, key string) (int64, error)
	// Expire sets a key's time to live.
	Expire(ctx context.Context, key string, expiration time.Duration) error
	// Scan walks all keys matching the pattern with the SCAN command.
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// redisCacheService is the Redis implementation of CacheService.
type redisCacheService struct {
	client *redis.Client
}

// NewCacheService is the constructor for redisCacheService.
func NewCacheService(client *redis.Client) CacheService {
	return &redisCacheService{
		client: client,
	}
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *redisCacheService) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *redisCacheService) Delete(ctx context.Context, key ...string) error {
	return s.client.Del(ctx, key...).Err()
}

func (s *redisCacheService) Increment(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}

func (s *redisCacheService) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return s.client.Expire(ctx, key, expiration).Err()
}

// Scan uses the SCAN command instead of KEYS so production Redis instances
// are never blocked by a full keyspace walk.
func (s *redisCacheService) Scan(ctx context.Context, pattern string) ([]string, error) {
	var allKeys []string
	var cursor uint64
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		allKeys = append(allKeys, keys...)
		if nextCursor == 0 {
			break
		}
		cursor = nextCursor
	}
	return allKeys, nil
}
