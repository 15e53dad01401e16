package periodic

import (
	"os"
	"os/signal"
)

// watchInterrupt maps os.Interrupt to Cancel. The subscription is
// released once the executor is done with it: on cancellation, or on
// loop exit when the task fails and the loop stops without a cancel.
func (e *Executor) watchInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	e.sigStopped = make(chan struct{})

	go func() {
		defer close(e.sigStopped)
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			e.logger.Debug().Str("signal", s.String()).Msg("interrupt received, cancelling")
			e.Cancel()
		case <-e.cancelCh:
		case <-e.doneCh:
		}
	}()
}
