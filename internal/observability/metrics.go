package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics stores Prometheus collectors for the API and the adoption workflow.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDuration        *prometheus.HistogramVec
	applicationsSubmittedTotal prometheus.Counter
	decisionsTotal             *prometheus.CounterVec
	notificationsCreatedTotal  *prometheus.CounterVec
	notificationFanOutSize     prometheus.Histogram
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adoption_core",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "adoption_core",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		applicationsSubmittedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "adoption_core",
				Name:      "applications_submitted_total",
				Help:      "Total number of adoption applications submitted.",
			},
		),
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adoption_core",
				Name:      "decisions_total",
				Help:      "Total number of application decisions grouped by outcome.",
			},
			[]string{"decision"},
		),
		notificationsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adoption_core",
				Name:      "notifications_created_total",
				Help:      "Total number of notifications created grouped by type.",
			},
			[]string{"type"},
		),
		notificationFanOutSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "adoption_core",
				Name:      "notification_fanout_size",
				Help:      "Number of recipients per submission fan-out.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.applicationsSubmittedTotal,
		m.decisionsTotal,
		m.notificationsCreatedTotal,
		m.notificationFanOutSize,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) HTTPMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := routePath(c)
		// Avoid self-scrape noise for request counters.
		if path == "/metrics" {
			return err
		}

		m.recordHTTPRequest(c.Method(), path, statusFromResult(c, err), time.Since(start))
		return err
	}
}

func (m *Metrics) IncApplicationSubmitted() {
	if m == nil {
		return
	}
	m.applicationsSubmittedTotal.Inc()
}

func (m *Metrics) IncDecision(decision string) {
	if m == nil {
		return
	}
	label := strings.TrimSpace(strings.ToLower(decision))
	if label == "" {
		label = "unknown"
	}
	m.decisionsTotal.WithLabelValues(label).Inc()
}

func (m *Metrics) IncNotificationCreated(notificationType string) {
	if m == nil {
		return
	}
	label := strings.TrimSpace(strings.ToLower(notificationType))
	if label == "" {
		label = "general"
	}
	m.notificationsCreatedTotal.WithLabelValues(label).Inc()
}

func (m *Metrics) ObserveFanOutSize(recipients int) {
	if m == nil {
		return
	}
	if recipients < 0 {
		recipients = 0
	}
	m.notificationFanOutSize.Observe(float64(recipients))
}

func (m *Metrics) recordHTTPRequest(method string, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	methodLabel := strings.ToUpper(strings.TrimSpace(method))
	if methodLabel == "" {
		methodLabel = "UNKNOWN"
	}
	pathLabel := strings.TrimSpace(path)
	if pathLabel == "" {
		pathLabel = "unmatched"
	}

	m.httpRequestsTotal.WithLabelValues(methodLabel, pathLabel, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(methodLabel, pathLabel).Observe(duration.Seconds())
}

func routePath(c *fiber.Ctx) string {
	if c == nil {
		return "unmatched"
	}

	if route := c.Route(); route != nil {
		if path := strings.TrimSpace(route.Path); path != "" {
			return path
		}
	}
	return "unmatched"
}

func statusFromResult(c *fiber.Ctx, err error) int {
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return fiberErr.Code
		}
		return fiber.StatusInternalServerError
	}

	if c == nil {
		return fiber.StatusOK
	}

	status := c.Response().StatusCode()
	if status == 0 {
		return fiber.StatusOK
	}
	return status
}
