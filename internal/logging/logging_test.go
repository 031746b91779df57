package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Warn("existence check failed", "path", "/p/a_test.go")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="existence check failed"`)
	assert.Contains(t, out, "path=/p/a_test.go")
	assert.NotContains(t, out, "time=")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelDebug).Debug("candidate", "path", "x")
	assert.Contains(t, buf.String(), "level=DEBUG msg=candidate path=x")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
