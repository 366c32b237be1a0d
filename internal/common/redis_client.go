package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"newskoop/newsroom/internal/logging"
)

// NewRedisClient builds the shared Redis client. A failed ping is logged but
// the client is still returned; the pool reconnects on demand.
func NewRedisClient(addr, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("failed to ping Redis, pool will retry", "addr", addr, "error", err.Error())
		return client
	}

	logging.Info("connected to Redis", "addr", addr)
	return client
}
