package periodic

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/periodicx/pkg/common/errors"
	"github.com/vnykmshr/periodicx/pkg/metrics"
)

// Task is the unit of work invoked on every tick.
type Task interface {
	// Execute runs the task. The context passed in is never cancelled by
	// the executor: cancellation only suppresses future invocations, an
	// in-flight invocation always runs to completion.
	Execute(ctx context.Context) error
}

// TaskFunc is a function type that implements the Task interface.
type TaskFunc func(ctx context.Context) error

// Execute implements the Task interface for TaskFunc.
func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Option configures an Executor at construction time.
type Option func(*Executor)

// WithDelay schedules the first invocation at now+d instead of
// immediately. A zero delay is meaningful: the first invocation is still
// deferred to the scheduling loop rather than fired synchronously.
func WithDelay(d time.Duration) Option {
	return func(e *Executor) {
		e.delay = d
		e.hasDelay = true
	}
}

// WithSkipMissed controls the missed-tick policy. When true (the
// default), fire times that have already passed are skipped so that at
// most one invocation happens per catch-up burst. When false, missed
// ticks run back-to-back until the schedule catches up with real time.
// Either way every nominal fire time stays on the t0+n*period grid.
func WithSkipMissed(skip bool) Option {
	return func(e *Executor) {
		e.skipMissed = skip
	}
}

// WithInterruptHandler controls whether os.Interrupt triggers Cancel
// exactly as an explicit call would. Enabled by default.
//
// Signal disposition is process-wide: every executor constructed with
// this enabled subscribes to the interrupt signal, and the signal is no
// longer delivered to the default handler while any such executor is
// live.
func WithInterruptHandler(enabled bool) Option {
	return func(e *Executor) {
		e.handleInterrupt = enabled
	}
}

// WithLogger attaches a zerolog logger for schedule events. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithNowFunc replaces the executor's clock. Intended for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMetrics enables Prometheus instrumentation for this executor
// under the given name.
func WithMetrics(name string, cfg metrics.Config) Option {
	return func(e *Executor) {
		if !cfg.Enabled {
			return
		}
		e.metricsName = name
		if cfg.Registry == nil {
			e.metrics = metrics.DefaultRegistry
		} else {
			e.metrics = metrics.NewRegistry(cfg.Registry)
		}
	}
}

// New creates an executor that will invoke task every period. It
// performs no invocation and starts no timer; call Run or Start to begin
// the schedule. If the interrupt handler is enabled (the default), it is
// installed here.
func New(task Task, period time.Duration, opts ...Option) (*Executor, error) {
	if task == nil {
		return nil, &errors.ValidationError{
			Module: "periodic",
			Field:  "task",
			Value:  nil,
			Reason: "cannot be nil",
		}
	}
	if period <= 0 {
		return nil, &errors.ValidationError{
			Module: "periodic",
			Field:  "period",
			Value:  period,
			Reason: "must be positive",
		}
	}

	e := &Executor{
		task:            task,
		period:          period,
		skipMissed:      true,
		handleInterrupt: true,
		now:             time.Now,
		logger:          zerolog.Nop(),
		cancelCh:        make(chan struct{}),
		doneCh:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.hasDelay && e.delay < 0 {
		return nil, &errors.ValidationError{
			Module: "periodic",
			Field:  "delay",
			Value:  e.delay,
			Reason: "cannot be negative",
			Hint:   "omit WithDelay for an immediate first run",
		}
	}

	if e.handleInterrupt {
		e.watchInterrupt()
	}

	return e, nil
}
