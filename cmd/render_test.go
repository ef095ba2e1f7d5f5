package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	cmd := newRenderCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"{0:>5} {1:#x}", "7", "255"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "    7 0xff\n", buf.String())
}

func TestRenderCommandArgv(t *testing.T) {
	cmd := newRenderCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--argv", "x 'y z'", "{} {}"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "x y z\n", buf.String())
}

func TestRenderCommandStrict(t *testing.T) {
	cmd := newRenderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"{1}", "only"})
	assert.Error(t, cmd.Execute())
}

func TestInferArg(t *testing.T) {
	assert.Equal(t, int64(42), inferArg("42"))
	assert.Equal(t, int64(-7), inferArg("-7"))
	assert.Equal(t, 2.5, inferArg("2.5"))
	assert.Equal(t, true, inferArg("true"))
	assert.Equal(t, "hello", inferArg("hello"))
}
