package periodicx

import (
	"time"

	"github.com/vnykmshr/periodicx/pkg/periodic"
)

// Run constructs an executor for task and drives its scheduling loop on
// the calling goroutine. It does not return until the executor is
// cancelled (nil) or the task returns an error (that error). The first
// invocation happens immediately unless periodic.WithDelay is given.
func Run(task periodic.Task, period time.Duration, opts ...periodic.Option) error {
	exec, err := periodic.New(task, period, opts...)
	if err != nil {
		return err
	}
	return exec.Run()
}

// Start constructs an executor for task and runs its scheduling loop on
// a background goroutine. The returned executor must be retained so the
// schedule can be stopped with Cancel.
func Start(task periodic.Task, period time.Duration, opts ...periodic.Option) (*periodic.Executor, error) {
	exec, err := periodic.New(task, period, opts...)
	if err != nil {
		return nil, err
	}
	if err := exec.Start(); err != nil {
		return nil, err
	}
	return exec, nil
}
