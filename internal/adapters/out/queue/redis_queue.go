package queue

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

const (
	readySuffix   = ":ready"
	delayedSuffix = ":delayed"
	payloadSuffix = ":payloads"

	popTimeout   = time.Second
	promoteEvery = 500 * time.Millisecond
	promoteBatch = 64
)

// RedisQueueAdapter implements out.QueuePort on plain redis structures: a
// list per queue for ready jobs, a sorted set scored by ready-time for
// delayed ones, and a hash holding delayed payloads keyed by job ID so a
// re-scheduled job replaces its pending predecessor.
type RedisQueueAdapter struct {
	client *redis.Client
	cfg    *config.Config
	logger out.LoggerPort
}

type jobEnvelope struct {
	ID      string          `json:"id"`
	Attempt int             `json:"attempt"`
	Payload json.RawMessage `json:"payload"`
}

func NewRedisQueueAdapter(cfg *config.Config, logger out.LoggerPort) (*RedisQueueAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("queue.redis.connect_failed", out.LogFields{
			"addr":  cfg.Redis.Addr,
			"error": err.Error(),
		})
		return nil, err
	}

	return &RedisQueueAdapter{
		client: client,
		cfg:    cfg,
		logger: logger.WithModule("RedisQueueAdapter"),
	}, nil
}

func (a *RedisQueueAdapter) Enqueue(ctx context.Context, queue string, payload []byte) error {
	envelope := jobEnvelope{
		ID:      uuid.NewString(),
		Payload: payload,
	}
	return a.pushReady(ctx, queue, envelope)
}

func (a *RedisQueueAdapter) EnqueueDelayedReplace(ctx context.Context, queue, jobID string, payload []byte, delay time.Duration) error {
	envelope := jobEnvelope{
		ID:      jobID,
		Payload: payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	readyAt := float64(time.Now().Add(delay).UnixMilli())

	// ZADD + HSET both overwrite, which is exactly the replace semantics
	pipe := a.client.TxPipeline()
	pipe.ZAdd(ctx, queue+delayedSuffix, redis.Z{Score: readyAt, Member: jobID})
	pipe.HSet(ctx, queue+payloadSuffix, jobID, data)
	_, err = pipe.Exec(ctx)
	return err
}

func (a *RedisQueueAdapter) Consume(ctx context.Context, queue string, handler out.JobHandler) error {
	go a.promoteLoop(ctx, queue)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		result, err := a.client.BRPop(ctx, popTimeout, queue+readySuffix).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Error("queue.pop.failed", out.LogFields{
				"queue": queue,
				"error": err.Error(),
			})
			time.Sleep(popTimeout)
			continue
		}

		// BRPop returns [key, value]
		var envelope jobEnvelope
		if err := json.Unmarshal([]byte(result[1]), &envelope); err != nil {
			a.logger.Error("queue.job.decode_failed", out.LogFields{
				"queue": queue,
				"error": err.Error(),
			})
			continue
		}

		job := out.Job{
			ID:      envelope.ID,
			Queue:   queue,
			Payload: envelope.Payload,
			Attempt: envelope.Attempt,
		}

		if err := handler(ctx, job); err != nil {
			a.retry(ctx, queue, envelope, err)
		}
	}
}

// retry returns a failed job to the delayed set with exponential backoff, or
// drops it once its attempts are exhausted.
func (a *RedisQueueAdapter) retry(ctx context.Context, queue string, envelope jobEnvelope, cause error) {
	envelope.Attempt++
	if envelope.Attempt >= a.cfg.Queue.Attempts {
		a.logger.Error("queue.job.exhausted", out.LogFields{
			"queue":    queue,
			"jobId":    envelope.ID,
			"attempts": envelope.Attempt,
			"error":    cause.Error(),
		})
		return
	}

	backoff := a.cfg.QueueBackoff() << (envelope.Attempt - 1)
	data, err := json.Marshal(envelope)
	if err != nil {
		a.logger.Error("queue.job.encode_failed", out.LogFields{
			"queue": queue,
			"jobId": envelope.ID,
			"error": err.Error(),
		})
		return
	}

	retryID := envelope.ID + ":retry:" + strconv.Itoa(envelope.Attempt)
	pipe := a.client.TxPipeline()
	pipe.ZAdd(ctx, queue+delayedSuffix, redis.Z{
		Score:  float64(time.Now().Add(backoff).UnixMilli()),
		Member: retryID,
	})
	pipe.HSet(ctx, queue+payloadSuffix, retryID, data)
	if _, err := pipe.Exec(ctx); err != nil {
		a.logger.Error("queue.job.requeue_failed", out.LogFields{
			"queue": queue,
			"jobId": envelope.ID,
			"error": err.Error(),
		})
		return
	}

	a.logger.Warn("queue.job.requeued", out.LogFields{
		"queue":   queue,
		"jobId":   envelope.ID,
		"attempt": envelope.Attempt,
		"backoff": backoff.String(),
	})
}

// promoteLoop moves due delayed jobs onto the ready list.
func (a *RedisQueueAdapter) promoteLoop(ctx context.Context, queue string) {
	ticker := time.NewTicker(promoteEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.promote(ctx, queue)
		}
	}
}

func (a *RedisQueueAdapter) promote(ctx context.Context, queue string) {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	due, err := a.client.ZRangeByScore(ctx, queue+delayedSuffix, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   now,
		Count: promoteBatch,
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			a.logger.Error("queue.promote.failed", out.LogFields{
				"queue": queue,
				"error": err.Error(),
			})
		}
		return
	}

	for _, jobID := range due {
		data, err := a.client.HGet(ctx, queue+payloadSuffix, jobID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			continue
		}

		pipe := a.client.TxPipeline()
		if err == nil {
			pipe.LPush(ctx, queue+readySuffix, data)
		}
		pipe.ZRem(ctx, queue+delayedSuffix, jobID)
		pipe.HDel(ctx, queue+payloadSuffix, jobID)
		if _, err := pipe.Exec(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("queue.promote.push_failed", out.LogFields{
				"queue": queue,
				"jobId": jobID,
				"error": err.Error(),
			})
		}
	}
}

func (a *RedisQueueAdapter) pushReady(ctx context.Context, queue string, envelope jobEnvelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return a.client.LPush(ctx, queue+readySuffix, data).Err()
}

// Client exposes the underlying connection so the session buffer can share
// it.
func (a *RedisQueueAdapter) Client() *redis.Client {
	return a.client
}

func (a *RedisQueueAdapter) Close() error {
	return a.client.Close()
}
