package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Type: "zap", Level: "debug", Output: &buf})
	require.NoError(t, err)

	l.Debugf("wrote %s", "src/entities/user.entity.ts")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "wrote src/entities/user.entity.ts", entry["msg"])
}

func TestZapLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Type: "zap", Level: "error", Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Type: "default", Level: "warn", Output: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Warnf("anchor %q not found", "constructor")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `[WARN] anchor "constructor" not found`))
}

func TestUnsupportedType(t *testing.T) {
	_, err := New(Config{Type: "syslog"})
	assert.Error(t, err)
}
