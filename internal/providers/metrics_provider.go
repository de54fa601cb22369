package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"iconpicker/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveAssetDuration(operation string, duration time.Duration)
	IncAssetErrors(operation string)
	IncMigrationsTotal(outcome string)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	assetDuration   *prometheus.HistogramVec
	assetErrors     *prometheus.CounterVec
	migrationsTotal *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveAssetDuration(operation string, duration time.Duration) {
	m.assetDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncAssetErrors(operation string) {
	m.assetErrors.WithLabelValues(operation).Inc()
}

func (m *MetricsProvider) IncMigrationsTotal(outcome string) {
	m.migrationsTotal.WithLabelValues(outcome).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iconpicker_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iconpicker_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "iconpicker_cache_hits_total",
			Help: "Total number of asset cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "iconpicker_cache_misses_total",
			Help: "Total number of asset cache misses",
		}),

		assetDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iconpicker_asset_operation_duration_seconds",
			Help:    "Duration of remote asset operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		assetErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iconpicker_asset_errors_total",
			Help: "Total number of failed remote asset operations",
		}, []string{"operation"}),

		migrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iconpicker_migrations_total",
			Help: "Total number of configuration migrations by outcome",
		}, []string{"outcome"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveAssetDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncAssetErrors(_ string)                          {}
func (n *noopMetrics) IncMigrationsTotal(_ string)                      {}
