package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CounterRepository handles the singleton usage_counters record. All
// writes are atomic upsert-increments executed inside PostgreSQL — the
// application never reads, modifies, and writes the value back, so
// concurrent increments cannot lose updates. Counters are write-only
// instrumentation; nothing in this service reads them.
type CounterRepository struct {
	pool *pgxpool.Pool
}

// NewCounterRepository creates a new CounterRepository.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// AddExecutions adds delta to the global execution counter, creating the
// singleton row if absent.
func (r *CounterRepository) AddExecutions(ctx context.Context, delta int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO usage_counters (singleton, executions)
		 VALUES (TRUE, $1)
		 ON CONFLICT (singleton) DO UPDATE
		 SET executions = usage_counters.executions + EXCLUDED.executions`,
		delta,
	)
	return err
}

// AddFeatureClicks adds delta to the named feature's click counter inside
// the singleton's feature_clicks map, creating row and key as needed.
func (r *CounterRepository) AddFeatureClicks(ctx context.Context, feature string, delta int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO usage_counters (singleton, feature_clicks)
		 VALUES (TRUE, jsonb_build_object($1::text, $2::bigint))
		 ON CONFLICT (singleton) DO UPDATE
		 SET feature_clicks = jsonb_set(
		     usage_counters.feature_clicks,
		     ARRAY[$1::text],
		     to_jsonb(COALESCE((usage_counters.feature_clicks->>$1)::bigint, 0) + $2::bigint)
		 )`,
		feature, delta,
	)
	return err
}
