// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"innflow/config"
)

// ContentCacheClient caches hotel configuration records fetched from the
// content system.
var ContentCacheClient *redis.Client

// InitContentCache initializes the Redis client backing the hotel
// configuration cache.
func InitContentCache() {
	ContentCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ContentCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (content cache): %v", err)
	}
}

// GetContentCacheClient returns the content cache client.
func GetContentCacheClient() *redis.Client {
	if ContentCacheClient == nil {
		InitContentCache()
	}
	return ContentCacheClient
}
