// Package metrics holds the Prometheus collectors for the dashboard server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Catalog refresh outcomes
const (
	RefreshApplied   = "applied"
	RefreshDiscarded = "discarded"
	RefreshFailed    = "failed"
)

type Registry struct {
	reg              *prometheus.Registry
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	StoreFetches     *prometheus.CounterVec
	CatalogRefreshes *prometheus.CounterVec
	DetailCache      *prometheus.CounterVec
	CatalogSize      prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricedash_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricedash_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	storeFetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricedash_store_fetches_total",
		Help: "Document store fetches by operation and outcome",
	}, []string{"op", "outcome"})
	catalogRefreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricedash_catalog_refreshes_total",
		Help: "Catalog refreshes by outcome",
	}, []string{"outcome"})
	detailCache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricedash_detail_cache_lookups_total",
		Help: "SKU detail cache lookups by result",
	}, []string{"result"})
	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pricedash_catalog_records",
		Help: "Records held by the in-memory catalog",
	})

	r.MustRegister(httpRequests, httpDuration, storeFetches, catalogRefreshes, detailCache, catalogSize)
	return &Registry{
		reg:              r,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		StoreFetches:     storeFetches,
		CatalogRefreshes: catalogRefreshes,
		DetailCache:      detailCache,
		CatalogSize:      catalogSize,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// ObserveRequest records one completed HTTP request
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordFetch counts one document store call
func (r *Registry) RecordFetch(op, outcome string) {
	r.StoreFetches.WithLabelValues(op, outcome).Inc()
}

// RecordRefresh counts one catalog refresh and, when applied, the new catalog size
func (r *Registry) RecordRefresh(outcome string, size int) {
	r.CatalogRefreshes.WithLabelValues(outcome).Inc()
	if outcome == RefreshApplied {
		r.CatalogSize.Set(float64(size))
	}
}

// RecordCacheLookup counts a detail cache hit or miss
func (r *Registry) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.DetailCache.WithLabelValues(result).Inc()
}
