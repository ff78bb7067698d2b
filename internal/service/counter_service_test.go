package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/questio/questio-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memCounterQueue struct {
	mu     sync.Mutex
	events []model.CounterEvent
	err    error
}

func (q *memCounterQueue) Enqueue(_ context.Context, event model.CounterEvent) error {
	if q.err != nil {
		return q.err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
	return nil
}

func TestNoteExecutionEnqueuesEvent(t *testing.T) {
	queue := &memCounterQueue{}
	svc := NewCounterService(queue, zerolog.Nop())

	svc.NoteExecution(context.Background())

	require.Len(t, queue.events, 1)
	require.Empty(t, queue.events[0].Feature)
	require.Equal(t, int64(1), queue.events[0].Delta)
}

func TestNoteFeatureClickEnqueuesNamedEvent(t *testing.T) {
	queue := &memCounterQueue{}
	svc := NewCounterService(queue, zerolog.Nop())

	svc.NoteFeatureClick(context.Background(), "dark_mode")

	require.Len(t, queue.events, 1)
	require.Equal(t, "dark_mode", queue.events[0].Feature)
}

func TestNoteExecutionSwallowsQueueErrors(t *testing.T) {
	queue := &memCounterQueue{err: errors.New("redis down")}
	svc := NewCounterService(queue, zerolog.Nop())

	// Must not panic or surface the error: instrumentation is best-effort.
	svc.NoteExecution(context.Background())
	svc.NoteFeatureClick(context.Background(), "dark_mode")
	require.Empty(t, queue.events)
}

func TestConcurrentNotesLoseNoEvents(t *testing.T) {
	queue := &memCounterQueue{}
	svc := NewCounterService(queue, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.NoteExecution(context.Background())
		}()
	}
	wg.Wait()

	require.Len(t, queue.events, 100)
	var total int64
	for _, e := range queue.events {
		total += e.Delta
	}
	require.Equal(t, int64(100), total)
}
