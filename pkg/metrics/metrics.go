package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors exposed by the service.
// Collectors are registered on the default registry and served via promhttp.
type Metrics struct {
	service string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database queries
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Connection pool
	DBPoolOpenConns  *prometheus.GaugeVec
	DBPoolIdleConns  *prometheus.GaugeVec
	DBPoolInUseConns *prometheus.GaugeVec
	DBPoolWaitCount  *prometheus.GaugeVec
}

// New creates and registers the service metrics.
func New(service string) *Metrics {
	return &Metrics{
		service: service,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route and status code.",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries, by operation and result.",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency distribution.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Current number of open connections in the pool.",
		}, []string{"service"}),

		DBPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Current number of idle connections in the pool.",
		}, []string{"service"}),

		DBPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Current number of connections in use.",
		}, []string{"service"}),

		DBPoolWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_wait_count_total",
			Help: "Total number of connection waits since process start.",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records one processed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(seconds)
}

// ObserveDBQuery records one executed database query.
func (m *Metrics) ObserveDBQuery(operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(seconds)
}

// SetPoolStats publishes current connection pool statistics.
func (m *Metrics) SetPoolStats(open, idle, inUse int, waitCount int64) {
	m.DBPoolOpenConns.WithLabelValues(m.service).Set(float64(open))
	m.DBPoolIdleConns.WithLabelValues(m.service).Set(float64(idle))
	m.DBPoolInUseConns.WithLabelValues(m.service).Set(float64(inUse))
	m.DBPoolWaitCount.WithLabelValues(m.service).Set(float64(waitCount))
}
