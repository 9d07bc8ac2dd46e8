// Package demo runs the scripted sequence of terminal output patterns:
// colored status, carriage-return progress, cursor-up progress, a no-echo
// password prompt, a confirmation prompt and an endless status loop
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ansidemo/config"
	"github.com/lixenwraith/ansidemo/terminal"
)

// Prompt and banner text
const (
	PasswordBanner  = "Here is a test password prompt"
	PasswordWarning = "Do not enter a real password"
	ConfirmPrompt   = "Continue [y/n]:"
	StartBanner     = "[Starting long running process...]"
	ExitHint        = "[Ctrl-C to exit]"
)

// stage returns false to end the run early without error
type stage struct {
	name string
	run  func(ctx context.Context) (bool, error)
}

// Demo drives the stage sequence against a writer and prompter
type Demo struct {
	cfg    config.Config
	out    *terminal.Writer
	prompt *terminal.Prompter
	log    zerolog.Logger

	wait func(ctx context.Context, d time.Duration) error
}

// New creates a demo
func New(cfg config.Config, out *terminal.Writer, prompt *terminal.Prompter, logger zerolog.Logger) *Demo {
	return &Demo{
		cfg:    cfg,
		out:    out,
		prompt: prompt,
		log:    logger,
		wait:   sleepContext,
	}
}

// Run executes all stages in order. It returns nil when the user declines
// to continue or when ctx ends during the status loop; cancellation in any
// earlier stage returns the context error
func (d *Demo) Run(ctx context.Context) error {
	stages := []stage{
		{"status", d.status},
		{"carriage-progress", d.carriageProgress},
		{"ansi-progress", d.ansiProgress},
		{"password", d.password},
		{"confirm", d.confirm},
		{"long-running", d.longRunning},
	}

	for _, s := range stages {
		d.log.Debug().Str("stage", s.name).Msg("stage start")
		cont, err := s.run(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if !cont {
			d.log.Debug().Str("stage", s.name).Msg("run ended by stage")
			return nil
		}
	}
	return nil
}

// StatusLine is the colored status line printed by the first and last stages
func (d *Demo) StatusLine() error {
	return d.out.Println("status: ", d.out.Paint("good", terminal.ColorGreen))
}

func (d *Demo) status(ctx context.Context) (bool, error) {
	return true, d.StatusLine()
}

func progressLine(i, n int) string {
	return fmt.Sprintf("[%d/%d]: file%d", i+1, n, i)
}

func (d *Demo) carriageProgress(ctx context.Context) (bool, error) {
	n := d.cfg.Lines
	for i := 0; i < n; i++ {
		if err := d.out.Overwrite(progressLine(i, n)); err != nil {
			return false, err
		}
		if err := d.wait(ctx, d.cfg.Interval); err != nil {
			return false, err
		}
	}
	// Leave the last progress line and one blank line behind
	return true, d.out.Print("\n\n")
}

func (d *Demo) ansiProgress(ctx context.Context) (bool, error) {
	n := d.cfg.Lines
	for i := 0; i < n; i++ {
		if err := d.out.RewritePrevious(progressLine(i, n)); err != nil {
			return false, err
		}
		if err := d.wait(ctx, d.cfg.Interval); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (d *Demo) password(ctx context.Context) (bool, error) {
	if err := d.out.Println(PasswordBanner); err != nil {
		return false, err
	}
	if err := d.out.Println(d.out.Paint(PasswordWarning, terminal.ColorRed)); err != nil {
		return false, err
	}

	secret, err := d.prompt.Password(ctx, "")
	if err != nil {
		return false, err
	}
	d.log.Debug().Int("length", len(secret)).Bool("tty", d.prompt.IsTerminal()).Msg("password read")
	return true, nil
}

func (d *Demo) confirm(ctx context.Context) (bool, error) {
	ans, err := d.prompt.Line(ctx, ConfirmPrompt)
	if err != nil {
		return false, err
	}

	c := terminal.ColorRed
	if ans == "y" {
		c = terminal.ColorGreen
	}
	if err := d.out.Println("You said: " + d.out.Paint(ans, c)); err != nil {
		return false, err
	}

	d.log.Debug().Str("answer", ans).Msg("confirmation")
	// Empty answer defaults to no
	return ans != "n" && ans != "", nil
}

func (d *Demo) longRunning(ctx context.Context) (bool, error) {
	if err := d.out.Println(StartBanner); err != nil {
		return false, err
	}
	if err := d.out.Println(ExitHint); err != nil {
		return false, err
	}

	ticks := 0
	for {
		if err := d.StatusLine(); err != nil {
			return false, err
		}
		ticks++
		if err := d.wait(ctx, d.cfg.Interval); err != nil {
			d.log.Debug().Int("ticks", ticks).Msg("status loop stopped")
			return false, nil
		}
	}
}

// sleepContext pauses for dur or until ctx is done
func sleepContext(ctx context.Context, dur time.Duration) error {
	if dur <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
