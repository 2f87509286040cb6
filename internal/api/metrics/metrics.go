// Package metrics defines and registers all custom Prometheus metrics for
// the InventoryFlow API. It is the single source of truth for metric
// names, labels, and help strings. Collectors register themselves with the
// default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - op: "register" or "login"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by outcome.",
	},
	[]string{"op", "outcome"},
)

// ProductsCreatedTotal counts successfully created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created across all tenants.",
	},
)

// QuotaRejectionsTotal counts product creations rejected by the plan quota.
var QuotaRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quota_rejections_total",
		Help:      "Total number of product creations rejected because the tenant hit its plan quota.",
	},
)

// LowStockAlertsTotal counts low-stock alert deliveries.
// Label:
//   - result: "ok" (delivered or deduped) or "failed"
var LowStockAlertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lowstock_alerts_total",
		Help:      "Total number of low-stock alert deliveries, by result.",
	},
	[]string{"result"},
)
