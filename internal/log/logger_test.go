package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	SetDebug(false)
	Debug("hidden %s", "message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown %s", "message")
	assert.Contains(t, buf.String(), "shown message")

	buf.Reset()
	Info("running %d", 42)
	Warn("careful")
	Error("boom")
	out := buf.String()
	assert.Contains(t, out, "running 42")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "boom")
}

func TestLogWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	SetDebug(false)

	LogWithFields(F("script", "/tmp/plan.sh"), F("entries", 3)).Info("loaded")
	out := buf.String()
	assert.Contains(t, out, "script=/tmp/plan.sh")
	assert.Contains(t, out, "entries=3")
	assert.Contains(t, out, "loaded")
}
