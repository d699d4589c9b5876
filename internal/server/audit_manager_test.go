package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureSink struct {
	mu      sync.Mutex
	batches [][]AuditLogEntry
	written chan struct{}
}

func newCaptureSink() *captureSink {
	return &captureSink{written: make(chan struct{}, 16)}
}

func (s *captureSink) WriteBatch(_ context.Context, batch []AuditLogEntry) error {
	s.mu.Lock()
	s.batches = append(s.batches, batch)
	s.mu.Unlock()
	s.written <- struct{}{}
	return nil
}

func (s *captureSink) snapshot() [][]AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]AuditLogEntry, len(s.batches))
	copy(out, s.batches)
	return out
}

func waitForBatch(t *testing.T, sink *captureSink, timeout time.Duration) {
	t.Helper()
	select {
	case <-sink.written:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for audit batch")
	}
}

func TestAuditManagerFlushesFullBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink()
	manager := NewAuditManager(1, 3, time.Minute, sink, zap.NewNop())
	manager.Start(ctx)

	for i := 0; i < 3; i++ {
		manager.LogEntry(ctx, AuditLogEntry{Handler: "handleBookParcel", StatusCode: 200})
	}

	waitForBatch(t, sink, 2*time.Second)

	batches := sink.snapshot()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 3)
	assert.Equal(t, "handleBookParcel", batches[0][0].Handler)

	manager.Shutdown(context.Background())
}

func TestAuditManagerFlushesOnTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink()
	manager := NewAuditManager(1, 100, 50*time.Millisecond, sink, zap.NewNop())
	manager.Start(ctx)

	manager.LogEntry(ctx, AuditLogEntry{Handler: "handleGetParcel"})

	waitForBatch(t, sink, 2*time.Second)

	batches := sink.snapshot()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 1)

	manager.Shutdown(context.Background())
}

func TestAuditManagerFlushesPendingOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink()
	manager := NewAuditManager(2, 100, time.Minute, sink, zap.NewNop())
	manager.Start(ctx)

	manager.LogEntry(ctx, AuditLogEntry{Handler: "handleRegister"})
	manager.LogEntry(ctx, AuditLogEntry{Handler: "handleAddReview"})

	manager.Shutdown(context.Background())

	batches := sink.snapshot()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 2)
}

func TestAuditManagerBatchesIndependently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink()
	manager := NewAuditManager(2, 2, time.Minute, sink, zap.NewNop())
	manager.Start(ctx)

	for i := 0; i < 4; i++ {
		manager.LogEntry(ctx, AuditLogEntry{StatusCode: 200 + i})
	}

	waitForBatch(t, sink, 2*time.Second)
	waitForBatch(t, sink, 2*time.Second)

	total := 0
	for _, batch := range sink.snapshot() {
		assert.Len(t, batch, 2)
		total += len(batch)
	}
	assert.Equal(t, 4, total)

	manager.Shutdown(context.Background())
}
