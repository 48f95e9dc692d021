package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/entity"
)

type stubIngestor struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (s *stubIngestor) IngestFile(_ context.Context, path string) (*entity.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Receipt{}, nil
}

func (s *stubIngestor) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

func TestQueueProcessesJobs(t *testing.T) {
	ing := &stubIngestor{}
	q := NewIngestQueue(ing, nil, WithWorkers(2), WithQueueSize(8))

	for _, p := range []string{"a.txt", "b.pdf", "c.png"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{Path: p, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.ElementsMatch(t, []string{"a.txt", "b.pdf", "c.png"}, ing.seen())
}

// Worker failures are logged, not fatal; the queue keeps draining.
func TestQueueContinuesAfterFailures(t *testing.T) {
	ing := &stubIngestor{err: errors.New("parse failed")}
	q := NewIngestQueue(ing, nil, WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "bad.txt"}))
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "also-bad.txt"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.Len(t, ing.seen(), 2)
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	ing := &stubIngestor{}
	q := NewIngestQueue(ing, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "late.txt"}))
	require.Empty(t, ing.seen())
}

func TestQueueShutdownIdempotent(t *testing.T) {
	q := NewIngestQueue(&stubIngestor{}, nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
