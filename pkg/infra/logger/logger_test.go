package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := NewLogger(Options{Mode: "worker", Level: "debug", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("job_id", "42").Info("job finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "worker.log"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "job finished", entry["msg"])
	assert.Equal(t, "42", entry["job_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_InvalidMode(t *testing.T) {
	for _, mode := range []string{"", "../etc", "a/b", "api.log"} {
		_, _, err := NewLogger(Options{Mode: mode, Dir: t.TempDir()})
		assert.Error(t, err, mode)
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, closer, err := NewLogger(Options{Mode: "api", Level: "verbose", Dir: t.TempDir()})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestConsoleHook(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(NewConsoleHook(&buf))

	logger.Warn("breaker open")
	assert.Contains(t, buf.String(), `"msg":"breaker open"`)
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 1024)
	require.NoError(t, err)
	_, _ = w.Write([]byte("line\n"))
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
