//go:generate go run go.uber.org/mock/mockgen -source=contextStore.go -destination=../../mocks/mock_history_store.go -package=mocks
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"apptchat/models"

	"github.com/go-redis/redis/v8"
)

const (
	historyPrefix       = "chat:history:"
	defaultHistoryLimit = 20
)

// HistoryStore keeps the recent chat exchanges of each client.
type HistoryStore interface {
	Append(ctx context.Context, clientID string, exchange models.ChatExchange) error
	Recent(ctx context.Context, clientID string) ([]models.ChatExchange, error)
}

// RedisHistoryStore keeps each transcript as a capped Redis list, newest first.
type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
	limit  int64
}

// NewRedisHistoryStore keeps at most limit exchanges per client. A non-positive
// limit falls back to the default.
func NewRedisHistoryStore(client *redis.Client, ttl time.Duration, limit int) *RedisHistoryStore {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &RedisHistoryStore{client: client, ttl: ttl, limit: int64(limit)}
}

func (s *RedisHistoryStore) Append(ctx context.Context, clientID string, exchange models.ChatExchange) error {
	b, err := json.Marshal(exchange)
	if err != nil {
		return err
	}
	key := historyPrefix + clientID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, b)
		pipe.LTrim(ctx, key, 0, s.limit-1)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns the stored exchanges oldest first.
func (s *RedisHistoryStore) Recent(ctx context.Context, clientID string) ([]models.ChatExchange, error) {
	raw, err := s.client.LRange(ctx, historyPrefix+clientID, 0, s.limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	exchanges := make([]models.ChatExchange, 0, len(raw))
	for _, item := range raw {
		var exchange models.ChatExchange
		if err := json.Unmarshal([]byte(item), &exchange); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
		exchanges = append(exchanges, exchange)
	}
	slices.Reverse(exchanges)
	return exchanges, nil
}
