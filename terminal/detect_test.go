package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectColorSupport_ExplicitChoice(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, DetectColorSupport(ChoiceAlways, -1), "always overrides NO_COLOR")
	assert.False(t, DetectColorSupport(ChoiceNever, -1))
}

func TestDetectColorSupport_AutoNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")
	assert.False(t, DetectColorSupport(ChoiceAuto, int(os.Stdout.Fd())))
}

func TestDetectColorSupport_AutoNotTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, DetectColorSupport(ChoiceAuto, int(f.Fd())))
	assert.False(t, DetectColorSupport(ChoiceAuto, -1))
}

func TestTermSupportsColor(t *testing.T) {
	assert.False(t, termSupportsColor("dumb"))
	assert.True(t, termSupportsColor(""))
	assert.True(t, termSupportsColor("xterm-256color"))
	assert.True(t, termSupportsColor("no-such-terminal-xyz"))
}
