package periodic

import "time"

// Metric recording helpers. All of them are no-ops unless the executor
// was constructed with WithMetrics.

func (e *Executor) setRunning(v float64) {
	if e.metrics == nil {
		return
	}
	e.metrics.Running.WithLabelValues(e.metricsName).Set(v)
}

func (e *Executor) observeLateness(d time.Duration) {
	if e.metrics == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	e.metrics.StartLateness.WithLabelValues(e.metricsName).Observe(d.Seconds())
}

func (e *Executor) observeInvocation(d time.Duration, err error) {
	if e.metrics == nil {
		return
	}
	e.metrics.Invocations.WithLabelValues(e.metricsName).Inc()
	e.metrics.InvocationDuration.WithLabelValues(e.metricsName).Observe(d.Seconds())
	if err != nil {
		e.metrics.InvocationErrors.WithLabelValues(e.metricsName).Inc()
	}
}

func (e *Executor) observeSkipped(n int) {
	if e.metrics == nil {
		return
	}
	e.metrics.TicksSkipped.WithLabelValues(e.metricsName).Add(float64(n))
}
