package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: int(slog.LevelWarn)}, &buf)

	l.Info("hidden")
	l.Warn("ticket submission limited", slog.String("client_ip", "192.0.2.1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ticket submission limited", line["msg"])
	assert.Equal(t, "192.0.2.1", line["client_ip"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helpdesk.log")
	l, closer, err := New(&Config{File: path})
	require.NoError(t, err)

	l.Info("dashboard started")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"dashboard started"`)
}

func TestNew_BadFile(t *testing.T) {
	_, _, err := New(&Config{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
