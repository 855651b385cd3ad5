// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"apptchat/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewHistoryCacheClient connects the Redis client backing the chat transcript
// store. It returns nil when no Redis address is configured. A failed ping is
// logged and the client is still returned; commands will fail until Redis is up.
func NewHistoryCacheClient(cfg config.Config) *redis.Client {
	if !cfg.HistoryEnabled() {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisHistoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Error("Failed to connect to Redis (History)", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return client
}
