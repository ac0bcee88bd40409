package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvperiph/lib/trust"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := trust.SetOutput(&buf)
	prevLevel := trust.SetLevel(trust.WarnMask)
	t.Cleanup(func() {
		trust.SetOutput(prevOut)
		trust.SetLevel(prevLevel)
	})
	return &buf
}

func TestKeepBroken(t *testing.T) {
	buf := captureLog(t)
	out := filepath.Join(t.TempDir(), "board_gen.go")

	keepBroken(out, []byte("package virt3\nfunc {"))
	got, err := os.ReadFile(out + ".broken")
	require.NoError(t, err)
	assert.Equal(t, "package virt3\nfunc {", string(got))
	assert.Empty(t, buf.String())
}

func TestKeepBrokenReportsWriteFailure(t *testing.T) {
	buf := captureLog(t)
	out := filepath.Join(t.TempDir(), "missing", "board_gen.go")

	keepBroken(out, []byte("package virt3"))
	assert.Contains(t, buf.String(), " WARN:keeping unformatted output:")
	assert.NoFileExists(t, out+".broken")
}
