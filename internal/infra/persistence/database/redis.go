package database

import (
	"context"
	"log"
	"strconv"

	"github.com/officinaverde/blog-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a Redis client, or nil when Redis is not configured
// or unreachable. A nil client is not an error: the caller falls back to the
// in-memory cache.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisAddr := cfg.GetString(config.KeyRedisAddr)
	redisPassword := cfg.GetString(config.KeyRedisPassword)

	if redisAddr == "" {
		log.Println("Redis address not configured, using in-memory cache")
		return nil, nil
	}

	redisDB := 0
	if v := cfg.GetString(config.KeyRedisDB); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid Redis.DB value %q: %v, using in-memory cache", v, err)
			return nil, nil
		}
		redisDB = parsed
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("failed to connect to Redis (%s, DB %d): %v, using in-memory cache", redisAddr, redisDB, err)
		rdb.Close()
		return nil, nil
	}

	log.Printf("connected to Redis (%s, DB %d)", redisAddr, redisDB)
	return rdb, nil
}
