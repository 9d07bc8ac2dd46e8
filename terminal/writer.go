package terminal

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-colorable"
)

// Writer emits line-oriented output, flushing after every call so partial
// lines ending in a carriage return reach the terminal immediately
type Writer struct {
	buf   *bufio.Writer
	color bool
}

// NewWriter wraps w. When color is false Paint returns text unchanged
func NewWriter(w io.Writer, color bool) *Writer {
	return &Writer{
		buf:   bufio.NewWriter(w),
		color: color,
	}
}

// NewStdoutWriter wraps stdout, translating escape sequences on Windows consoles
func NewStdoutWriter(color bool) *Writer {
	return NewWriter(colorable.NewColorableStdout(), color)
}

// ColorEnabled reports whether Paint emits escape sequences
func (w *Writer) ColorEnabled() bool {
	return w.color
}

// Paint colorizes text when color is enabled
func (w *Writer) Paint(text string, c Color) string {
	if !w.color {
		return text
	}
	return Colorize(text, c)
}

// Print writes s as-is
func (w *Writer) Print(s string) error {
	w.buf.WriteString(s)
	return w.buf.Flush()
}

// Println writes parts separated by single spaces and a trailing newline
func (w *Writer) Println(parts ...string) error {
	w.buf.WriteString(strings.Join(parts, " "))
	w.buf.WriteByte('\n')
	return w.buf.Flush()
}

// Newline writes an empty line
func (w *Writer) Newline() error {
	return w.Println()
}

// Overwrite writes line and returns the cursor to column 1 without advancing,
// so the next write replaces it
func (w *Writer) Overwrite(line string) error {
	w.buf.WriteString(line)
	w.buf.WriteString(CarriageReturn)
	return w.buf.Flush()
}

// RewritePrevious moves to the start of the line above and writes line over it
func (w *Writer) RewritePrevious(line string) error {
	w.buf.WriteString(CursorPrevLine)
	w.buf.WriteString(line)
	w.buf.WriteByte('\n')
	return w.buf.Flush()
}
