package trust

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, mask MaskLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := SetLevel(mask)
	t.Cleanup(func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestMasking(t *testing.T) {
	buf := capture(t, ErrorMask|WarnMask)

	Errorf("claim of source %d failed", 3)
	Warnf("no harts")
	Infof("hidden")
	Debugf("hidden")

	assert.Equal(t, "ERROR:claim of source 3 failed\n WARN:no harts\n", buf.String())
	assert.Equal(t, "error warn", LevelToString())
}

func TestStats(t *testing.T) {
	buf := capture(t, StatsMask)

	Statsf("timer", "%d wakeups\n", 4)
	assert.Equal(t, "STATS[timer]:4 wakeups\n", buf.String())
}

func TestStatsCategoryIsNotAFormat(t *testing.T) {
	buf := capture(t, StatsMask)
	Statsf("100%s", "%d%% busy", 7)
	assert.Equal(t, "STATS[100%s]:7% busy\n", buf.String())
}

func TestFatalIsNotMaskable(t *testing.T) {
	buf := capture(t, Nothing)
	code := -1
	prevExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = prevExit }()

	Fatalf(3, "bad board %s", "x")
	assert.Equal(t, 3, code)
	assert.Equal(t, "FATAL:bad board x\n", buf.String())
}

func TestVerbose(t *testing.T) {
	capture(t, Nothing)
	prev := Verbose()
	assert.Equal(t, Nothing, prev)
	assert.Equal(t, "error warn info debug stats", LevelToString())
}
