package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"":        Info,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestJSONLoggerIncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "pawlog", Writer: &buf})

	log.With(map[string]any{"component": "store"}).Info("dog added", map[string]any{"dog_id": "d1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dog added", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "pawlog", entry["app"])
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "d1", entry["dog_id"])
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatText, Writer: &buf})

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	log.Warn("shown", map[string]any{"k": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error("nothing", map[string]any{"a": 1})
	assert.NotNil(t, log.With(map[string]any{"x": "y"}))
}
