package service

import (
	"context"
	"encoding/json"

	"github.com/questio/questio-backend/internal/config"
	"github.com/questio/questio-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CounterQueue enqueues counter increments for the background worker.
type CounterQueue interface {
	Enqueue(ctx context.Context, event model.CounterEvent) error
}

// RedisCounterQueue pushes counter events onto the Redis worker queue.
type RedisCounterQueue struct {
	rdb *redis.Client
}

// NewRedisCounterQueue creates a new RedisCounterQueue.
func NewRedisCounterQueue(rdb *redis.Client) *RedisCounterQueue {
	return &RedisCounterQueue{rdb: rdb}
}

// Enqueue appends one counter event to the worker queue.
func (q *RedisCounterQueue) Enqueue(ctx context.Context, event model.CounterEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.rdb.RPush(ctx, config.WorkerKey.CounterEventsQueue, raw).Err()
}

var _ CounterQueue = (*RedisCounterQueue)(nil)

// CounterService records usage instrumentation. Every operation is
// fire-and-forget: failures are logged and swallowed so instrumentation
// can never block or fail the user-facing action it is attached to.
type CounterService struct {
	queue CounterQueue
	log   zerolog.Logger
}

// NewCounterService creates a new CounterService.
func NewCounterService(queue CounterQueue, log zerolog.Logger) *CounterService {
	return &CounterService{
		queue: queue,
		log:   log.With().Str("component", "counter_service").Logger(),
	}
}

// NoteExecution records one sandbox execution.
func (s *CounterService) NoteExecution(ctx context.Context) {
	if err := s.queue.Enqueue(ctx, model.CounterEvent{Delta: 1}); err != nil {
		s.log.Error().Err(err).Msg("Failed to record execution count")
	}
}

// NoteFeatureClick records one click on the named feature.
func (s *CounterService) NoteFeatureClick(ctx context.Context, feature string) {
	if err := s.queue.Enqueue(ctx, model.CounterEvent{Feature: feature, Delta: 1}); err != nil {
		s.log.Error().Err(err).Str("feature", feature).Msg("Failed to record feature click")
	}
}
