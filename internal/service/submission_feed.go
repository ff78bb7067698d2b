package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/questio/questio-backend/internal/config"
	"github.com/questio/questio-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// RedisSubmissionFeed publishes graded exam submissions on a Redis PubSub
// channel consumed by the instructor monitor WebSocket.
type RedisSubmissionFeed struct {
	rdb *redis.Client
}

// NewRedisSubmissionFeed creates a new RedisSubmissionFeed.
func NewRedisSubmissionFeed(rdb *redis.Client) *RedisSubmissionFeed {
	return &RedisSubmissionFeed{rdb: rdb}
}

// PublishSubmission publishes one submission event.
func (f *RedisSubmissionFeed) PublishSubmission(ctx context.Context, event model.SubmissionEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode submission event: %w", err)
	}
	return f.rdb.Publish(ctx, config.CacheKey.SubmissionFeedChannel(), raw).Err()
}

var _ SubmissionFeed = (*RedisSubmissionFeed)(nil)
