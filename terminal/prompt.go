package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// DefaultPasswordPrompt is shown when Password is called with an empty prompt
const DefaultPasswordPrompt = "Password: "

// Prompter reads answers from an input stream, echoing prompts to out.
// It is not safe for concurrent use
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
	tty    bool

	// pending is the read still running after a cancelled call
	pending chan readResult
}

type fder interface {
	Fd() uintptr
}

// NewPrompter creates a prompter. If in is a terminal file, Password reads
// without echo; otherwise answers are read as plain lines
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}
	if f, ok := in.(fder); ok {
		p.fd = int(f.Fd())
		p.tty = term.IsTerminal(p.fd)
	}
	return p
}

// IsTerminal reports whether input comes from a terminal
func (p *Prompter) IsTerminal() bool {
	return p.tty
}

// Password prints prompt and reads a secret. On a terminal echo is disabled
// for the read and restored afterwards, including on cancellation
func (p *Prompter) Password(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		prompt = DefaultPasswordPrompt
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	if !p.tty {
		return p.readLine(ctx)
	}

	state, err := term.GetState(p.fd)
	if err != nil {
		return "", fmt.Errorf("get terminal state: %w", err)
	}

	r, err := p.await(ctx, func() readResult {
		b, err := term.ReadPassword(p.fd)
		return readResult{string(b), err}
	})
	// Enter was swallowed along with the echo
	io.WriteString(p.out, "\n")
	if err != nil {
		// The pending ReadPassword still holds echo off until it returns
		term.Restore(p.fd, state)
		return "", err
	}
	if r.err != nil {
		return "", fmt.Errorf("read password: %w", r.err)
	}
	return strings.TrimRight(r.text, "\r\n"), nil
}

// Line prints prompt and reads one line with the line ending stripped.
// End of input yields whatever was read, possibly ""
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	return p.readLine(ctx)
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	r, err := p.await(ctx, func() readResult {
		s, err := p.reader.ReadString('\n')
		return readResult{s, err}
	})
	if err != nil {
		return "", err
	}
	if r.err != nil && !errors.Is(r.err, io.EOF) {
		return "", fmt.Errorf("read line: %w", r.err)
	}
	return strings.TrimRight(r.text, "\r\n"), nil
}

type readResult struct {
	text string
	err  error
}

// await waits for the outstanding read, starting one with read if none is
// pending. A read abandoned on cancellation stays pending and its answer goes
// to the next caller, so input is never consumed by two readers at once
func (p *Prompter) await(ctx context.Context, read func() readResult) (readResult, error) {
	if err := ctx.Err(); err != nil {
		return readResult{}, err
	}

	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			ch <- read()
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return readResult{}, ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r, nil
	}
}
