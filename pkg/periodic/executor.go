package periodic

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/periodicx/pkg/common/errors"
	"github.com/vnykmshr/periodicx/pkg/metrics"
)

// Executor lifecycle states.
const (
	stateIdle int32 = iota
	stateRunning
	stateStopped
)

// wakeReason reports why an interruptible wait returned.
type wakeReason int

const (
	wakeElapsed wakeReason = iota
	wakeCancelled
)

// Executor invokes a single task on a fixed absolute-time grid. Each
// instance owns exactly one schedule; run several executors for several
// periodic tasks.
type Executor struct {
	task            Task
	period          time.Duration
	delay           time.Duration
	hasDelay        bool
	skipMissed      bool
	handleInterrupt bool
	now             func() time.Time
	logger          zerolog.Logger

	metrics     *metrics.Registry
	metricsName string

	state      atomic.Int32
	cancelled  atomic.Bool
	cancelOnce sync.Once
	cancelCh   chan struct{}
	doneCh     chan struct{}
	sigStopped chan struct{} // closed when the interrupt watcher exits
	background atomic.Bool
	err        error

	// nextFire is the nominal start time of the next invocation. It is
	// owned by the scheduling loop and only ever advanced by whole
	// multiples of period.
	nextFire time.Time
}

// Run drives the scheduling loop on the calling goroutine. It returns
// nil once the executor is cancelled, or the task's error verbatim if an
// invocation fails; otherwise it does not return. Without WithDelay the
// first invocation starts immediately.
func (e *Executor) Run() error {
	if err := e.begin(); err != nil {
		return err
	}
	return e.runLoop()
}

// Start runs the scheduling loop on a background goroutine and returns
// immediately. The caller must retain the executor to Cancel it later;
// Done and Err expose how the loop ended.
func (e *Executor) Start() error {
	if err := e.begin(); err != nil {
		return err
	}
	e.background.Store(true)
	go func() {
		_ = e.runLoop()
	}()
	return nil
}

// Cancel stops the schedule. It is idempotent and safe to call from any
// goroutine, including the interrupt-forwarding one, before Run, or
// after the loop has already stopped. It wakes a waiting loop promptly
// instead of letting it sleep out the remaining period. When the
// executor was started with Start, Cancel blocks until the background
// goroutine has exited, so no invocation begins after Cancel returns;
// for that reason a background task must not call Cancel on its own
// executor.
func (e *Executor) Cancel() {
	e.cancelled.Store(true)
	e.cancelOnce.Do(func() {
		close(e.cancelCh)
	})
	if e.background.Load() {
		<-e.doneCh
	}
}

// Done is closed when the scheduling loop has exited.
func (e *Executor) Done() <-chan struct{} {
	return e.doneCh
}

// Err reports how the loop ended: the task's error, or nil for
// cancellation. It returns nil while the loop is still running.
func (e *Executor) Err() error {
	select {
	case <-e.doneCh:
		return e.err
	default:
		return nil
	}
}

// begin transitions Idle -> Running and pins t0 for the schedule grid.
func (e *Executor) begin() error {
	if !e.state.CompareAndSwap(stateIdle, stateRunning) {
		return errors.ErrAlreadyRunning
	}

	// Cancelled before ever running: let the loop exit straight away
	// without announcing a start or pulsing the running gauge.
	if e.cancelled.Load() {
		return nil
	}

	start := e.now()
	if e.hasDelay {
		e.nextFire = start.Add(e.delay)
	} else {
		e.nextFire = start
	}

	e.setRunning(1)
	e.logger.Debug().
		Dur("period", e.period).
		Time("first_fire", e.nextFire).
		Bool("skip_missed", e.skipMissed).
		Msg("starting periodic executor")

	return nil
}

func (e *Executor) runLoop() error {
	err := e.loop()
	e.err = err
	e.setRunning(0)
	e.state.Store(stateStopped)
	close(e.doneCh)

	if err != nil {
		e.logger.Error().Err(err).Msg("periodic task failed")
	} else {
		e.logger.Debug().Msg("periodic executor stopped")
	}
	return err
}

// loop is the schedule state machine: wait until the nominal fire time,
// invoke, advance the grid, repeat. Cancellation is checked only at
// these checkpoints so an in-flight invocation is never aborted.
func (e *Executor) loop() error {
	for {
		if e.waitUntil(e.nextFire) == wakeCancelled {
			return nil
		}
		if e.cancelled.Load() {
			return nil
		}
		if err := e.invoke(); err != nil {
			return err
		}
		e.advance()
	}
}

func (e *Executor) invoke() error {
	nominal := e.nextFire
	start := e.now()
	e.observeLateness(start.Sub(nominal))

	e.logger.Debug().Time("nominal", nominal).Msg("invoking task")
	err := e.task.Execute(context.Background())
	e.observeInvocation(e.now().Sub(start), err)
	return err
}

// advance moves nextFire forward on the original grid. With skipMissed
// set, any fire times that already passed while the task ran are dropped
// so the next one is the first grid point at or after now.
func (e *Executor) advance() {
	e.nextFire = e.nextFire.Add(e.period)
	if !e.skipMissed {
		return
	}

	now := e.now()
	skipped := 0
	for e.nextFire.Before(now) {
		e.nextFire = e.nextFire.Add(e.period)
		skipped++
	}
	if skipped > 0 {
		e.observeSkipped(skipped)
		e.logger.Debug().
			Int("skipped", skipped).
			Time("next_fire", e.nextFire).
			Msg("skipped missed ticks")
	}
}

// waitUntil blocks until t or until the executor is cancelled, and
// reports which of the two happened. Cancellation wins when the target
// time has already passed.
func (e *Executor) waitUntil(t time.Time) wakeReason {
	d := t.Sub(e.now())
	if d <= 0 {
		select {
		case <-e.cancelCh:
			return wakeCancelled
		default:
			return wakeElapsed
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return wakeElapsed
	case <-e.cancelCh:
		return wakeCancelled
	}
}
