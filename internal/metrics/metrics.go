// Package metrics exposes Prometheus metrics for the HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lalitmohan/portfolio/internal/portfolio"
)

const namespace = "portfolio"

// unmatchedRoute labels requests that hit no registered route, keeping the
// path label bounded.
const unmatchedRoute = "unmatched"

// Metrics owns a private registry so several servers can coexist in one
// process (tests mostly).
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	renders      prometheus.Counter
	renderTime   prometheus.Histogram
	contentItems *prometheus.GaugeVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Number of times the page was rendered",
		}),
		renderTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Time spent rendering the page",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5},
		}),
		contentItems: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "content_items",
			Help:      "Number of content records by kind",
		}, []string{"kind"}), // kind=projects|skills|services|navigation
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records every request. Routes are labelled by their pattern, not
// the raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveRender records one page render.
func (m *Metrics) ObserveRender(d time.Duration) {
	m.renders.Inc()
	m.renderTime.Observe(d.Seconds())
}

// SetContent publishes the size of the loaded content.
func (m *Metrics) SetContent(cfg portfolio.Config) {
	m.contentItems.WithLabelValues("projects").Set(float64(len(cfg.Projects)))
	m.contentItems.WithLabelValues("skills").Set(float64(len(cfg.Skills)))
	m.contentItems.WithLabelValues("services").Set(float64(len(cfg.Services)))
	m.contentItems.WithLabelValues("navigation").Set(float64(len(cfg.Navigation)))
}
