package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - метрики HTTP-запросов и расчёта представлений панели
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	queryDuration     *prometheus.HistogramVec
	queryRecords      *prometheus.HistogramVec
}

// New создаёт метрики в собственном реестре
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_query_duration_seconds",
			Help:    "Time spent filtering and aggregating one dashboard view.",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"view"}),
		queryRecords: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_query_records",
			Help:    "Number of records matched by the filter for one dashboard view.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"view"}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.queryDuration,
		m.queryRecords,
	)
	return m
}

// ObserveQuery фиксирует длительность расчёта представления и размер выборки
func (m *Metrics) ObserveQuery(view string, matched int, d time.Duration) {
	m.queryDuration.WithLabelValues(view).Observe(d.Seconds())
	m.queryRecords.WithLabelValues(view).Observe(float64(matched))
}

// Middleware - gin middleware для учёта HTTP-запросов
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
