// Package metrics provides Prometheus metric collection for the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level metrics into a dedicated registry.
type Collector struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	authFailures prometheus.Counter
	logins       prometheus.Counter
	latency      prometheus.Histogram
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boardgo_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "status"}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardgo_auth_failures_total",
			Help: "Session token verifications that failed",
		}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boardgo_logins_total",
			Help: "Completed OAuth logins",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boardgo_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	c.registry.MustRegister(c.requests, c.authFailures, c.logins, c.latency)
	return c
}

// RecordAuthFailure counts a failed token verification.
func (c *Collector) RecordAuthFailure() { c.authFailures.Inc() }

// RecordLogin counts a completed OAuth login.
func (c *Collector) RecordLogin() { c.logins.Inc() }

// Middleware records request count and latency for every handled request.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		c.latency.Observe(time.Since(start).Seconds())
		c.requests.WithLabelValues(ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}

// Handler exposes the registry in Prometheus text format.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
