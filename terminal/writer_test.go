package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Paint(t *testing.T) {
	var buf bytes.Buffer

	on := NewWriter(&buf, true)
	assert.True(t, on.ColorEnabled())
	assert.Equal(t, "\x1b[32mgood\x1b[0m", on.Paint("good", ColorGreen))

	off := NewWriter(&buf, false)
	assert.False(t, off.ColorEnabled())
	assert.Equal(t, "good", off.Paint("good", ColorGreen))
}

func TestWriter_LineOperations(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	require.NoError(t, w.Println("status: ", w.Paint("good", ColorGreen)))
	assert.Equal(t, "status:  \x1b[32mgood\x1b[0m\n", buf.String())
	buf.Reset()

	require.NoError(t, w.Overwrite("[1/5]: file0"))
	assert.Equal(t, "[1/5]: file0\r", buf.String())
	buf.Reset()

	require.NoError(t, w.RewritePrevious("[2/5]: file1"))
	assert.Equal(t, "\x1b[F[2/5]: file1\n", buf.String())
	buf.Reset()

	require.NoError(t, w.Newline())
	require.NoError(t, w.Print("raw"))
	assert.Equal(t, "\nraw", buf.String())
}

func TestWriter_FlushesEachCall(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	require.NoError(t, w.Overwrite("partial"))
	// Nothing may linger in the buffer: a carriage-return line has no newline
	assert.Equal(t, "partial\r", buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, assert.AnError }

func TestWriter_PropagatesErrors(t *testing.T) {
	w := NewWriter(failWriter{}, false)
	assert.ErrorIs(t, w.Println("x"), assert.AnError)
}
