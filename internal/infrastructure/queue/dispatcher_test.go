package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventoryflow/inventory-api/internal/core/ports"
)

type recordingAlertService struct {
	mu     sync.Mutex
	seen   []ports.LowStockAlert
	err    error
	notify chan struct{}
}

func newRecordingAlertService(err error) *recordingAlertService {
	return &recordingAlertService{err: err, notify: make(chan struct{}, 16)}
}

func (s *recordingAlertService) Process(_ context.Context, alert ports.LowStockAlert) error {
	s.mu.Lock()
	s.seen = append(s.seen, alert)
	s.mu.Unlock()
	s.notify <- struct{}{}
	return s.err
}

func (s *recordingAlertService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for alert %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_DeliversAlerts(t *testing.T) {
	svc := newRecordingAlertService(nil)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.LowStockAlert{TenantID: "tenant_1", ProductID: "p1", Quantity: 3})
	d.Enqueue(ports.LowStockAlert{TenantID: "tenant_2", ProductID: "p2", Quantity: 7})

	waitFor(t, svc.notify, 2)
	if svc.count() != 2 {
		t.Fatalf("expected 2 processed alerts, got %d", svc.count())
	}
}

func TestDispatcher_FailureDoesNotStopWorker(t *testing.T) {
	svc := newRecordingAlertService(errors.New("smtp down"))
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.LowStockAlert{TenantID: "tenant_1", ProductID: "p1"})
	d.Enqueue(ports.LowStockAlert{TenantID: "tenant_1", ProductID: "p2"})

	// Both alerts are attempted despite the first failing.
	waitFor(t, svc.notify, 2)
}

func TestDispatcher_ShardStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingAlertService(nil), zerolog.Nop())

	first := d.shardIndex("tenant_abc")
	for i := 0; i < 100; i++ {
		if d.shardIndex("tenant_abc") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
