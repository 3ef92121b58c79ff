package bootstrap

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleMiner_Go/internal/config"
)

func writeLogs(t *testing.T, dir string, n int) []string {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Minute).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, names[i]), []byte("x"), 0o644))
	}
	return names
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestCleanupLogs(t *testing.T) {
	tests := []struct {
		name    string
		files   int
		keep    int
		wantLen int
	}{
		{"under limit", 3, 9, 3},
		{"at limit", 9, 9, 9},
		{"over limit", 12, 9, 9},
		{"keep none", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			names := writeLogs(t, dir, tt.files)

			cleanupLogs(dir, tt.keep)

			remaining := listDir(t, dir)
			assert.Len(t, remaining, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, names[len(names)-tt.wantLen:], remaining, "newest files survive")
			}
		})
	}
}

func TestCleanupLogs_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeLogs(t, dir, 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	cleanupLogs(dir, 9)

	assert.Len(t, listDir(t, dir), 10)
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger_WritesConsoleAndFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{LogDir: dir, LogLevel: "info", LogFormat: "text", Environment: "test", Version: "v1"}
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	var console bytes.Buffer
	f, err := setupLogger(cfg, &console, now)
	require.NoError(t, err)
	slog.Info("hello from test")
	require.NoError(t, f.Close())

	path := filepath.Join(dir, "session_2026-03-02_09-30-00.log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, console.String(), "hello from test")
	assert.Contains(t, console.String(), LogMsgStarting)
}
