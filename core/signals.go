package core

import (
	"os"
	"os/signal"
)

// IgnoreInterrupts keeps SIGINT from terminating the shell. The signal is
// received and dropped rather than ignored so child processes still start
// with the default disposition and can be interrupted.
//
// The returned function restores the default behavior.
func IgnoreInterrupts() (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt)

	go func() {
		for {
			select {
			case <-sigs:
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
