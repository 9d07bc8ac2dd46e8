package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// exitInterrupted is 128 + SIGINT, used when the signal number is unknown
const exitInterrupted = 130

// signalError is the cancellation cause recorded when a signal stops a run
type signalError struct {
	sig os.Signal
}

func (e *signalError) Error() string {
	return "interrupted by " + e.sig.String()
}

func (e *signalError) Unwrap() error {
	return context.Canceled
}

// ExitCode follows the shell convention of 128 + signal number
func (e *signalError) ExitCode() int {
	if s, ok := e.sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return exitInterrupted
}

// signalContext is signal.NotifyContext that keeps the signal as the
// context's cause
func signalContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case sig := <-ch:
			cancel(&signalError{sig: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel(nil)
	}
}
