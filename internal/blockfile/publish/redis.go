// Package publish pushes audit events to Redis subscribers.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/reorg"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultBufferLimit = 1000

// RedisPublisher publishes events on a channel and keeps the latest ones in a
// sorted set so late subscribers can catch up.
type RedisPublisher struct {
	client      Client
	channel     string
	bufferLimit int64
	logger      *zap.Logger
	now         func() time.Time
}

// NewRedisPublisher connects to the Redis server at url.
func NewRedisPublisher(url, channel string, logger *zap.Logger) (*RedisPublisher, error) {
	if channel == "" {
		return nil, fmt.Errorf("redis channel is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return newRedisPublisher(redis.NewClient(opts), channel, logger), nil
}

func newRedisPublisher(client Client, channel string, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{
		client:      client,
		channel:     channel,
		bufferLimit: defaultBufferLimit,
		logger:      logger,
		now:         time.Now,
	}
}

// BufferKey is the sorted set holding recently published events.
func (p *RedisPublisher) BufferKey() string {
	return fmt.Sprintf("events:%s", p.channel)
}

// Publish sends every event in one pipeline.
func (p *RedisPublisher) Publish(ctx context.Context, events []reorg.Event) error {
	if len(events) == 0 {
		return nil
	}
	payloads := make([]string, 0, len(events))
	for _, event := range events {
		raw, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.Kind, err)
		}
		payloads = append(payloads, string(raw))
	}

	key := p.BufferKey()
	_, err := p.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		// Microseconds keep base+i exact in a float64 score.
		base := p.now().UnixMicro()
		for i, payload := range payloads {
			score := float64(base + int64(i))
			if err := pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: payload}).Err(); err != nil {
				return err
			}
			if err := pipe.Publish(ctx, p.channel, payload).Err(); err != nil {
				return err
			}
		}
		return pipe.ZRemRangeByRank(ctx, key, 0, -p.bufferLimit-1).Err()
	})
	if err != nil {
		return fmt.Errorf("publish %d events to %s: %w", len(events), p.channel, err)
	}
	p.logger.Info("events published", zap.String("channel", p.channel), zap.Int("events", len(events)))
	return nil
}

// Close closes the Redis client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
