// Package notify holds the push channels behind ports.NotificationSender.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultStream is the stream the push gateway consumes.
const DefaultStream = "staffing:push"

// RedisStreamSender hands pushes to the gateway by appending them to a
// Redis stream. Delivery to the device is the gateway's job.
type RedisStreamSender struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisStreamSender caps the stream at roughly maxLen entries; zero
// leaves it uncapped.
func NewRedisStreamSender(client *redis.Client, stream string, maxLen int64) *RedisStreamSender {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStreamSender{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStreamSender) Send(ctx context.Context, address, text string) error {
	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"address":   address,
			"text":      text,
			"queued_at": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish to stream %s: %w", s.stream, err)
	}
	return nil
}
