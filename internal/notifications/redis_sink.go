package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/go-redis/redis/v8"
)

// RedisSink publishes events as JSON on a pub/sub channel.
type RedisSink struct {
	client  redis.Cmdable
	channel string
}

func NewRedisSink(client redis.Cmdable, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Send(ctx context.Context, event domain.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return s.client.Publish(ctx, s.channel, payload).Err()
}
