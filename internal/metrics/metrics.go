// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DatasetLoads counts dataset loads by result ("ok" / "error").
	DatasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "desglose_dataset_loads_total",
		Help: "Dataset loads from the workbook source, by result.",
	}, []string{"result"})

	// StaleFallbacks counts reads served from stale data after a failed reload.
	StaleFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "desglose_cache_stale_fallbacks_total",
		Help: "Reads served from the previous dataset after a reload failure.",
	})

	// CacheInvalidations counts explicit cache invalidations.
	CacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "desglose_cache_invalidations_total",
		Help: "Explicit cache invalidations (workbook replaced).",
	})

	// DatasetRecords tracks the size of the cached dataset.
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "desglose_dataset_records",
		Help: "Records in the currently cached dataset.",
	})

	// HTTPRequests counts API requests by route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "desglose_http_requests_total",
		Help: "API requests, by route and HTTP status.",
	}, []string{"route", "status"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
