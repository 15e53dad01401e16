/*
Package periodic provides a drift-free periodic task executor.

Invocation start times are anchored to an absolute grid (t0 + n*period)
computed once at run time, never re-based off "now", so slow tasks and
timer jitter do not accumulate into schedule drift.

# Quick Start

	task := periodic.TaskFunc(func(ctx context.Context) error {
		fmt.Println("tick")
		return nil
	})

	exec, err := periodic.New(task, time.Second)
	if err != nil {
		log.Fatal(err)
	}

	// Blocks until cancelled (Ctrl+C cancels by default).
	if err := exec.Run(); err != nil {
		log.Fatal(err)
	}

# Non-blocking

	exec, _ := periodic.New(task, time.Second)
	_ = exec.Start()
	...
	exec.Cancel() // joins the background goroutine before returning

# Options

	periodic.New(task, time.Second,
		periodic.WithDelay(5*time.Second),        // first run at now+5s
		periodic.WithSkipMissed(false),           // replay missed ticks back-to-back
		periodic.WithInterruptHandler(false),     // leave SIGINT alone
		periodic.WithLogger(logger),              // zerolog schedule events
		periodic.WithMetrics("heartbeat", cfg),   // Prometheus instrumentation
	)

# Missed ticks

When an invocation runs longer than the period, the grid points it
covered are "missed". With the default skip-missed policy the executor
jumps to the first future grid point, dropping the missed ones. With
WithSkipMissed(false) the missed ticks run immediately one after another
until the schedule catches up; every invocation still belongs to a
nominal grid point, so nothing leaves the original timeline.

# Errors

An error returned by the task is not caught or retried: it terminates
the schedule and is returned verbatim from Run (or surfaced through Err
after Done closes, for background executors). Tasks that want to survive
failures must handle them internally. Invocations never overlap and a
cancelled executor cannot be reused.
*/
package periodic
