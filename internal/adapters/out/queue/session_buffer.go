package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

const (
	sessionKeyPrefix = "session:messages:"

	// Abandoned sessions expire on their own
	sessionTTL = 24 * time.Hour
)

// RedisSessionBuffer implements out.SessionBufferPort on a redis list per
// conversation session, sharing the queue adapter's connection.
type RedisSessionBuffer struct {
	client *redis.Client
	logger out.LoggerPort
}

func NewRedisSessionBuffer(client *redis.Client, logger out.LoggerPort) *RedisSessionBuffer {
	return &RedisSessionBuffer{
		client: client,
		logger: logger.WithModule("RedisSessionBuffer"),
	}
}

func (b *RedisSessionBuffer) Append(ctx context.Context, sessionID string, msg domain.InboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	key := sessionKeyPrefix + sessionID
	pipe := b.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, sessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (b *RedisSessionBuffer) Peek(ctx context.Context, sessionID string) ([]domain.InboundMessage, error) {
	items, err := b.client.LRange(ctx, sessionKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]domain.InboundMessage, 0, len(items))
	for _, item := range items {
		var msg domain.InboundMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			b.logger.Warn("session.buffer.decode_failed", out.LogFields{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (b *RedisSessionBuffer) Clear(ctx context.Context, sessionID string) error {
	return b.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
