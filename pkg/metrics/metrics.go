// Package metrics provides Prometheus instrumentation for periodicx executors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for periodic executors. Every
// metric carries an "executor" label so several named executors can
// share one registry.
type Registry struct {
	Invocations        *prometheus.CounterVec
	InvocationErrors   *prometheus.CounterVec
	TicksSkipped       *prometheus.CounterVec
	InvocationDuration *prometheus.HistogramVec
	StartLateness      *prometheus.HistogramVec
	Running            *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry, backed by the
// Prometheus default registerer.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		Invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "invocations_total",
				Help:      "Total number of task invocations",
			},
			[]string{"executor"},
		),

		InvocationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "invocation_errors_total",
				Help:      "Total number of task invocations that returned an error",
			},
			[]string{"executor"},
		),

		TicksSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "ticks_skipped_total",
				Help:      "Total number of missed ticks dropped by the skip-missed policy",
			},
			[]string{"executor"},
		),

		InvocationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "invocation_duration_seconds",
				Help:      "Time spent inside a single task invocation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"executor"},
		),

		StartLateness: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "start_lateness_seconds",
				Help:      "Delay between an invocation's nominal and actual start time",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"executor"},
		),

		Running: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "periodicx",
				Subsystem: "executor",
				Name:      "running",
				Help:      "Whether the executor's scheduling loop is live (1) or not (0)",
			},
			[]string{"executor"},
		),
	}
}
