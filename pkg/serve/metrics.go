package serve

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "seam").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "seam",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for page rendering.
type metrics struct {
	pagesTotal     *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	bytesTotal     prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on the first call to WithMetrics().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		pagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pages_rendered_total",
			Help:        "Total number of pages rendered",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of page build and render errors",
			ConstLabels: config.ConstLabels,
		}, []string{"path"}),

		bytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes_total",
			Help:        "Total number of HTML bytes written",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// WithMetrics enables Prometheus metrics on the handler.
//
// Metrics collected:
//   - seam_pages_rendered_total: Counter of pages by path and status
//   - seam_render_duration_seconds: Histogram of render duration by path
//   - seam_render_errors_total: Counter of build/render errors by path
//   - seam_render_bytes_total: Counter of HTML bytes written
//
// Example:
//
//	h := serve.Pages(buildPage,
//	    serve.WithMetrics(serve.WithNamespace("myapp")),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func WithMetrics(opts ...MetricsOption) Option {
	mc := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&mc)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(mc)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(c *config) {
		c.metrics = m
	}
}

func (c *config) record(path string, status, bytes int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.pagesTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	c.metrics.renderDuration.WithLabelValues(path).Observe(elapsed.Seconds())
	c.metrics.bytesTotal.Add(float64(bytes))
}

func (c *config) recordError(path string) {
	if c.metrics == nil {
		return
	}
	c.metrics.renderErrors.WithLabelValues(path).Inc()
}
