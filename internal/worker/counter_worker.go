package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/questio/questio-backend/internal/config"
	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	CounterBatchSize    = 100
	CounterBatchTimeout = 2 * time.Second
	CounterPollTimeout  = 1 * time.Second
)

// CounterWorker consumes counter_events_queue and applies the increments
// to the usage_counters singleton. Events are aggregated per batch so a
// burst of executions becomes a single atomic upsert-increment per
// counter. Counter writes are best-effort: a failed flush is logged and
// the events requeued.
type CounterWorker struct {
	counterRepo *repository.CounterRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewCounterWorker creates a new CounterWorker.
func NewCounterWorker(counterRepo *repository.CounterRepository, rdb *redis.Client, log zerolog.Logger) *CounterWorker {
	return &CounterWorker{
		counterRepo: counterRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "counter_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine.
func (w *CounterWorker) Start(ctx context.Context) {
	w.log.Info().Msg("CounterWorker started")

	batch := make([]model.CounterEvent, 0, CounterBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= CounterBatchSize || time.Since(lastFlush) >= CounterBatchTimeout) {

			w.flush(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining events...")
			w.flush(context.Background(), batch)
			w.drain(context.Background())
			return

		default:
			item, err := w.rdb.BLPop(ctx, CounterPollTimeout, config.WorkerKey.CounterEventsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var event model.CounterEvent
			if err := json.Unmarshal([]byte(item[1]), &event); err != nil {
				w.log.Error().Err(err).Msg("Invalid counter event payload")
				continue
			}

			batch = append(batch, event)
		}
	}
}

// flush aggregates a batch into one increment per counter and applies
// them. Each increment runs as an atomic upsert inside PostgreSQL.
func (w *CounterWorker) flush(ctx context.Context, batch []model.CounterEvent) {
	if len(batch) == 0 {
		return
	}

	var executions int64
	clicks := make(map[string]int64)
	for _, event := range batch {
		if event.Feature == "" {
			executions += event.Delta
		} else {
			clicks[event.Feature] += event.Delta
		}
	}

	if executions > 0 {
		if err := w.counterRepo.AddExecutions(ctx, executions); err != nil {
			w.log.Error().Err(err).Int64("delta", executions).Msg("Execution counter flush failed — requeueing")
			w.requeue(ctx, model.CounterEvent{Delta: executions})
		}
	}

	for feature, delta := range clicks {
		if err := w.counterRepo.AddFeatureClicks(ctx, feature, delta); err != nil {
			w.log.Error().Err(err).Str("feature", feature).Msg("Feature click flush failed — requeueing")
			w.requeue(ctx, model.CounterEvent{Feature: feature, Delta: delta})
		}
	}
}

func (w *CounterWorker) requeue(ctx context.Context, event model.CounterEvent) {
	raw, _ := json.Marshal(event)
	w.rdb.RPush(ctx, config.WorkerKey.CounterEventsQueue, raw)
}

// drain applies all remaining queued events before shutdown.
func (w *CounterWorker) drain(ctx context.Context) {
	drained := 0
	batch := make([]model.CounterEvent, 0, CounterBatchSize)
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.CounterEventsQueue).Result()
		if err != nil {
			break
		}

		var event model.CounterEvent
		if err := json.Unmarshal([]byte(result), &event); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}
		batch = append(batch, event)
		drained++
	}

	w.flush(ctx, batch)
	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining counter events")
	}
}
