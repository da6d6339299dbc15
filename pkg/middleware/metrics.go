package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/forge/pkg/forge"
)

// MetricsConfig configures the Prometheus decorator.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "forge").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for creation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus decorator.
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

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "forge",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors used by the Prometheus decorator.
type Metrics struct {
	created        *prometheus.CounterVec
	createErrors   *prometheus.CounterVec
	appended       *prometheus.CounterVec
	createDuration prometheus.Histogram
}

// NewMetrics registers the decorator's collectors. Register once per
// registry and share the result between hosts.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_created_total",
			Help:        "Total number of elements created",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		createErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "element_errors_total",
			Help:        "Total number of element creations rejected by the host",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		appended: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_appended_total",
			Help:        "Total number of child attachments",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		createDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_duration_seconds",
			Help:        "Element creation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Prometheus wraps host with a fresh set of metrics. See NewMetrics for
// sharing collectors between hosts.
func Prometheus(host forge.TreeHost, opts ...MetricsOption) forge.TreeHost {
	return NewMetrics(opts...).Wrap(host)
}

// Wrap decorates host with m.
func (m *Metrics) Wrap(host forge.TreeHost) forge.TreeHost {
	return Observe(host, m)
}

// CreateElement implements Observer.
func (m *Metrics) CreateElement(tag string) func(error) {
	start := time.Now()
	return func(err error) {
		m.createDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			m.createErrors.WithLabelValues(tag).Inc()
			return
		}
		m.created.WithLabelValues(tag).Inc()
	}
}

// AppendChild implements Observer.
func (m *Metrics) AppendChild(parent, child string) func(error) {
	return func(err error) {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.appended.WithLabelValues(status).Inc()
	}
}
