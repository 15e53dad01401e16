/*
Package periodicx executes a task periodically with high precision and
absolute timing.

Successive invocation start times are anchored to an absolute grid
(t0 + n*period) rather than to the duration of each invocation or sleep,
so the schedule never drifts the way a naive "sleep then run" loop does.

Entry points:

	// Blocking: runs on the calling goroutine until cancelled.
	err := periodicx.Run(task, time.Second)

	// Non-blocking: returns an executor handle for cancellation.
	exec, err := periodicx.Start(task, time.Second)
	...
	exec.Cancel()

The core lives in pkg/periodic; this package is a thin wrapper that
constructs an executor and starts it. Prometheus instrumentation is
available through pkg/metrics.
*/
package periodicx
