package terminal

import (
	"io"
	"os"
)

// Line and cursor control sequences
const (
	CarriageReturn = "\r"
	SGRReset       = "\x1b[0m"

	// CursorPrevLine moves to column 1 of the line above (CPL)
	CursorPrevLine = "\x1b[F"

	CursorShow = "\x1b[?25h"
)

// restoreTermios is swapped out by tests so they never touch the real tty
var restoreTermios = resetTerminalMode

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery, where a prompt may have left echo off.
func EmergencyReset(w io.Writer) {
	io.WriteString(w, CursorShow)
	io.WriteString(w, SGRReset)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Echo and line mode live in termios, out of reach of escape sequences
	restoreTermios()
}
