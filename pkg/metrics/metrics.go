// Package metrics records toast and dialog lifecycle events.
//
// The engines report through the Recorder interface. Nop discards
// everything; Prometheus exports counters and a gauge:
//
//   - bfkr_toasts_shown_total{type}
//   - bfkr_toasts_dismissed_total{cause}
//   - bfkr_toasts_active
//   - bfkr_dialogs_opened_total{kind}
//   - bfkr_dialog_results_total{kind,result}
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dismissal causes.
const (
	CauseTimeout = "timeout"
	CauseClose   = "close"
	CauseAction  = "action"
)

// Dialog results.
const (
	ResultClosed    = "closed"
	ResultConfirmed = "confirmed"
	ResultCancelled = "cancelled"
	ResultSubmitted = "submitted"
)

// Recorder receives lifecycle events.
type Recorder interface {
	ToastShown(typ string)
	ToastDismissed(cause string)
	ToastRemoved()
	DialogOpened(kind string)
	DialogSettled(kind, result string)
}

// Nop is a Recorder that does nothing.
type Nop struct{}

func (Nop) ToastShown(string)            {}
func (Nop) ToastDismissed(string)        {}
func (Nop) ToastRemoved()                {}
func (Nop) DialogOpened(string)          {}
func (Nop) DialogSettled(string, string) {}

// Config configures the Prometheus recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "bfkr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "bfkr",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	toastsShown     *prometheus.CounterVec
	toastsDismissed *prometheus.CounterVec
	toastsActive    prometheus.Gauge
	dialogsOpened   *prometheus.CounterVec
	dialogResults   *prometheus.CounterVec
}

// Prometheus registers the collectors on the configured registry and returns
// a Recorder. Registering twice on the same registry panics, as with promauto.
func Prometheus(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown by semantic type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		toastsDismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_dismissed_total",
			Help:        "Total number of toasts dismissed by cause",
			ConstLabels: config.ConstLabels,
		}, []string{"cause"}),

		toastsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_active",
			Help:        "Number of toasts currently attached to a container",
			ConstLabels: config.ConstLabels,
		}),

		dialogsOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dialogs_opened_total",
			Help:        "Total number of dialogs opened by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		dialogResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dialog_results_total",
			Help:        "Total number of settled dialogs by kind and result",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "result"}),
	}
}

// ToastShown implements Recorder.
func (c *Collector) ToastShown(typ string) {
	c.toastsShown.WithLabelValues(typ).Inc()
	c.toastsActive.Inc()
}

// ToastDismissed implements Recorder.
func (c *Collector) ToastDismissed(cause string) {
	c.toastsDismissed.WithLabelValues(cause).Inc()
}

// ToastRemoved implements Recorder.
func (c *Collector) ToastRemoved() {
	c.toastsActive.Dec()
}

// DialogOpened implements Recorder.
func (c *Collector) DialogOpened(kind string) {
	c.dialogsOpened.WithLabelValues(kind).Inc()
}

// DialogSettled implements Recorder.
func (c *Collector) DialogSettled(kind, result string) {
	c.dialogResults.WithLabelValues(kind, result).Inc()
}
