package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"skyward-va/horizon/internal/logging"
)

// NewRedisClient builds the shared Redis client used by the flight
// registry, the notification stream and the Redis cache.
func NewRedisClient(addr, password string) *redis.Client {
	logging.Info("Initializing Redis client", "addr", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("Failed to ping Redis", "error", err.Error())
		return client // connection pool will keep retrying
	}

	logging.Info("Connected to Redis")
	return client
}
