package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/fatih/color"

	"github.com/lixenwraith/ansidemo/terminal"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: a crash inside the password prompt leaves echo off
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			color.New(color.FgRed).Fprintf(os.Stderr, "\nANSIDEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		var se *signalError
		if errors.As(err, &se) {
			return se.ExitCode()
		}
		// Cancelled without a recorded signal
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

// printError writes err with a red prefix; fatih/color drops the color when
// stderr is not a terminal
func printError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
