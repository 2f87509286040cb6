package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/inventoryflow/inventory-api/internal/api/metrics"
	"github.com/inventoryflow/inventory-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes low-stock alerts to a fixed set of workers using
// consistent hashing on the tenant id, so one tenant's alerts are
// delivered in order. Delivery failures are logged and counted, never
// surfaced to the request that triggered the alert.
type Dispatcher struct {
	workers []chan ports.LowStockAlert
	service ports.AlertService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AlertService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LowStockAlert, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LowStockAlert, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an alert to the worker responsible for its tenant.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(alert ports.LowStockAlert) {
	d.workers[d.shardIndex(alert.TenantID)] <- alert
}

// shardIndex maps a tenant id deterministically to a worker index.
func (d *Dispatcher) shardIndex(tenantID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tenantID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LowStockAlert) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, alert); err != nil {
				metrics.LowStockAlertsTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).
					Str("tenant_id", alert.TenantID).
					Str("product_id", alert.ProductID).
					Int("worker_id", id).
					Msg("low stock alert delivery failed")
				continue
			}
			metrics.LowStockAlertsTotal.WithLabelValues("ok").Inc()
		}
	}
}
