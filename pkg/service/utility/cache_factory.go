package utility

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewCacheServiceWithFallback returns the Redis cache when a healthy client
// is provided and the in-memory cache otherwise.
func NewCacheServiceWithFallback(redisClient *redis.Client) CacheService {
	if redisClient == nil {
		log.Println("using in-memory cache service")
		return NewMemoryCacheService()
	}

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable: %v, falling back to in-memory cache", err)
		return NewMemoryCacheService()
	}

	log.Println("using Redis cache service")
	return NewCacheService(redisClient)
}
