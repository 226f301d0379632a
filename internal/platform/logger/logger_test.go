package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, "error", Error.String())

	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn := New(Options{Level: Info, Format: FormatJSON, App: "pets-provider", Output: &buf})
	defer closeFn()

	l.With(map[string]any{"request_id": "r-1"}).Info("pet inserted", map[string]any{"uri": "content://x/pets/1", "": "ignored"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "pet inserted", entry["msg"])
	assert.Equal(t, "pets-provider", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "content://x/pets/1", entry["uri"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Options{Level: Warn, Output: &buf})

	l.Debug("debug", nil)
	l.Info("info", nil)
	assert.Empty(t, buf.String())

	l.Warn("careful", map[string]any{"n": 1})
	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=careful"), out)
	assert.True(t, strings.Contains(out, "n=1"), out)
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	l := slog.New(h).With("k", "v")
	l.Info("hello")

	assert.Contains(t, a.String(), "msg=hello")
	assert.Contains(t, a.String(), "k=v")
	assert.Empty(t, b.String())
}
