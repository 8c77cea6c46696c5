package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// CheckHealth pings the cache and reports a point-in-time snapshot.
func CheckHealth(cacheClient *redis.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	redisOK := false
	if cacheClient != nil {
		redisOK = cacheClient.Ping(ctx).Err() == nil
	}

	return HealthStatus{
		Redis:     redisOK,
		CheckedAt: time.Now(),
	}
}
