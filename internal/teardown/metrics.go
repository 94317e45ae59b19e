package teardown

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resource kinds counted by the deleted-resources metric.
const (
	ResourceObjects    = "objects"
	ResourceBuckets    = "buckets"
	ResourceParameters = "parameters"
	ResourceLogGroups  = "log_groups"
	ResourceStacks     = "stacks"
)

// Metrics collects counters for one destroy run.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	resourcesDeleted *prometheus.CounterVec
	logGroupFailures prometheus.Counter
	pollAttempts     prometheus.Counter
	runDuration      prometheus.Gauge
	runSuccess       prometheus.Gauge
}

// NewMetrics creates metrics labelled with the stack being destroyed.
func NewMetrics(stack string) *Metrics {
	labels := prometheus.Labels{"stack": stack}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resourcesDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "stackrm",
				Subsystem:   "destroy",
				Name:        "resources_deleted_total",
				Help:        "Total number of resources deleted by kind",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
		logGroupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "stackrm",
			Subsystem:   "destroy",
			Name:        "log_group_failures_total",
			Help:        "Total number of log groups that could not be deleted",
			ConstLabels: labels,
		}),
		pollAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "stackrm",
			Subsystem:   "destroy",
			Name:        "poll_attempts_total",
			Help:        "Total number of stack deletion status checks",
			ConstLabels: labels,
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "stackrm",
			Subsystem:   "destroy",
			Name:        "last_run_duration_seconds",
			Help:        "Duration of the last destroy run in seconds",
			ConstLabels: labels,
		}),
		runSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "stackrm",
			Subsystem:   "destroy",
			Name:        "last_run_success",
			Help:        "Whether the last destroy run succeeded (1) or failed (0)",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(
		m.resourcesDeleted,
		m.logGroupFailures,
		m.pollAttempts,
		m.runDuration,
		m.runSuccess,
	)
	return m
}

// Registry returns the registry holding the run's metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Deleted adds n deleted resources of the given kind.
func (m *Metrics) Deleted(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.resourcesDeleted.WithLabelValues(kind).Add(float64(n))
}

// LogGroupFailed records a log group that could not be deleted.
func (m *Metrics) LogGroupFailed() {
	if m == nil {
		return
	}
	m.logGroupFailures.Inc()
}

// PollAttempt records one stack deletion status check.
func (m *Metrics) PollAttempt() {
	if m == nil {
		return
	}
	m.pollAttempts.Inc()
}

// ObserveRun records the outcome of a run.
func (m *Metrics) ObserveRun(d time.Duration, success bool) {
	if m == nil {
		return
	}
	m.runDuration.Set(d.Seconds())
	if success {
		m.runSuccess.Set(1)
	} else {
		m.runSuccess.Set(0)
	}
}

// WriteTextfile writes the metrics in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
