// Package metrics defines and registers all custom Prometheus metrics for the
// rental store API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// and are exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ---------------------------------------------------------------------------
// Rental lifecycle metrics
// ---------------------------------------------------------------------------

// RentalsCreatedTotal counts successfully created rentals.
var RentalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_created_total",
		Help:      "Total number of rentals created.",
	},
)

// RentalsRejectedTotal counts rejected checkout attempts.
// Label:
//   - reason: "invalid_movie", "invalid_customer", or "out_of_stock"
var RentalsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_rejected_total",
		Help:      "Total number of rejected rental creations, by reason.",
	},
	[]string{"reason"},
)

// ReturnsProcessedTotal counts successfully processed returns.
var ReturnsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_processed_total",
		Help:      "Total number of returns processed.",
	},
)

// ReturnsRejectedTotal counts rejected return attempts.
// Label:
//   - reason: "not_found" or "already_returned"
var ReturnsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_rejected_total",
		Help:      "Total number of rejected returns, by reason.",
	},
	[]string{"reason"},
)

// StockInconsistenciesTotal counts returns whose stock increment matched no
// movie document. Each increment is a rental whose movie was deleted while
// the rental was open.
var StockInconsistenciesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_inconsistencies_total",
		Help:      "Total number of skipped stock increments caused by a missing movie.",
	},
)

// RentalFeeCharged observes the fee computed for each processed return.
var RentalFeeCharged = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fee_charged",
		Help:      "Rental fees charged on return.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
	},
)

// ---------------------------------------------------------------------------
// Cache metrics
// ---------------------------------------------------------------------------

// CatalogCacheTotal counts catalog list cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
