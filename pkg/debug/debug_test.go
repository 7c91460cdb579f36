package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Log("selection %d -> %q", 2, "Blue")

	assert.Regexp(t, `^\[\d\d:\d\d:\d\d\.\d{3}\] selection 2 -> "Blue"\n$`, buf.String())
}

func TestLog_NilOutputIsNoop(t *testing.T) {
	prev := SetOutput(nil)
	defer SetOutput(prev)

	assert.NotPanics(t, func() { Log("dropped %s", "message") })
}

func TestInit_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	prev := SetOutput(nil)
	defer SetOutput(prev)

	require.NoError(t, Init(path))
	Logf("hello %s", "file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestInit_EmptyPath(t *testing.T) {
	assert.Error(t, Init(""))
}
