package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ansidemo/config"
	"github.com/lixenwraith/ansidemo/terminal"
)

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

// newTestDemo wires a demo to an in-memory terminal. wait succeeds limit
// times and then reports cancellation
func newTestDemo(input string, color bool, limit int) (*Demo, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	cfg := config.Config{Lines: 2, Interval: 7 * time.Millisecond}
	d := New(cfg, terminal.NewWriter(&out, color), terminal.NewPrompter(strings.NewReader(input), &out), zerolog.Nop())

	var waits []time.Duration
	d.wait = func(ctx context.Context, dur time.Duration) error {
		if len(waits) >= limit {
			return context.Canceled
		}
		waits = append(waits, dur)
		return nil
	}
	return d, &out, &waits
}

const prelude = "status:  " + green + "good" + reset + "\n" +
	"[1/2]: file0\r[2/2]: file1\r\n\n" +
	"\x1b[F[1/2]: file0\n\x1b[F[2/2]: file1\n" +
	"Here is a test password prompt\n" +
	red + "Do not enter a real password" + reset + "\n" +
	"Password: " +
	"Continue [y/n]:"

func TestRun_FullSequence(t *testing.T) {
	d, out, waits := newTestDemo("hunter2\ny\n", true, 6)

	require.NoError(t, d.Run(context.Background()))

	status := "status:  " + green + "good" + reset + "\n"
	want := prelude +
		"You said: " + green + "y" + reset + "\n" +
		"[Starting long running process...]\n[Ctrl-C to exit]\n" +
		strings.Repeat(status, 3)
	assert.Equal(t, want, out.String())

	assert.Len(t, *waits, 6)
	for _, w := range *waits {
		assert.Equal(t, 7*time.Millisecond, w)
	}
}

func TestRun_DeclineStops(t *testing.T) {
	tests := []struct {
		name  string
		input string
		said  string
	}{
		{"no", "pw\nn\n", "n"},
		{"empty line", "pw\n\n", ""},
		{"end of input", "pw\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out, waits := newTestDemo(tt.input, true, 100)

			require.NoError(t, d.Run(context.Background()))
			assert.Equal(t, prelude+"You said: "+red+tt.said+reset+"\n", out.String())
			assert.Len(t, *waits, 4, "only the progress stages wait")
		})
	}
}

func TestRun_OtherAnswerIsRedButContinues(t *testing.T) {
	d, out, _ := newTestDemo("pw\nmaybe\n", true, 5)

	require.NoError(t, d.Run(context.Background()))
	assert.Contains(t, out.String(), "You said: "+red+"maybe"+reset+"\n")
	assert.Contains(t, out.String(), "[Ctrl-C to exit]\n")
}

func TestRun_NoColor(t *testing.T) {
	d, out, _ := newTestDemo("pw\nn\n", false, 100)

	require.NoError(t, d.Run(context.Background()))
	assert.NotContains(t, out.String(), "\x1b[3")
	assert.True(t, strings.HasPrefix(out.String(), "status:  good\n"))
	assert.Contains(t, out.String(), "Do not enter a real password\n")
	// Cursor movement is not color and stays
	assert.Contains(t, out.String(), "\x1b[F[1/2]: file0\n")
}

func TestRun_CancelDuringProgress(t *testing.T) {
	d, out, _ := newTestDemo("pw\ny\n", true, 0)

	err := d.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "carriage-progress")
	assert.Equal(t, "status:  "+green+"good"+reset+"\n[1/2]: file0\r", out.String())
}

func TestRun_CancelDuringPrompt(t *testing.T) {
	d, _, _ := newTestDemo("", true, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.wait = func(context.Context, time.Duration) error { return nil }

	err := d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "password")
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.ErrorIs(t, sleepContext(ctx, 0), context.Canceled)
}
