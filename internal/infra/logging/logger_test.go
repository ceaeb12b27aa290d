package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func readLog(t *testing.T, dataDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_LogFormat(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("01HZX3A", "usecase", `goal created: "Run 5k"`)

	lines := strings.Split(strings.TrimSpace(readLog(t, dataDir)), "\n")
	require.Len(t, lines, 1)

	// [timestamp] [INFO] [01HZX3A] [usecase] message
	line := lines[0]
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `, line)
	assert.Contains(t, line, "[INFO] [01HZX3A] [usecase] ")
	assert.Contains(t, line, `goal created: "Run 5k"`)
}

func TestLogger_GlobalEntry(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Warn("", "store", "stored goals are malformed")

	assert.Contains(t, readLog(t, dataDir), "[WARN] [global] [store] stored goals are malformed")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("g", "test", "debug message")
	logger.Info("g", "test", "info message")
	logger.Warn("g", "test", "warn message")
	logger.Error("g", "test", "error message")

	content := readLog(t, dataDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestLogger_FanOut(t *testing.T) {
	dataDir := t.TempDir()
	var buf bytes.Buffer
	extra := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := New(dataDir, slog.LevelDebug, extra)
	defer func() { _ = logger.Close() }()

	logger.Debug("g", "test", "file only")
	logger.Error("g", "test", "everywhere")

	content := readLog(t, dataDir)
	assert.Contains(t, content, "file only")
	assert.Contains(t, content, "everywhere")

	assert.NotContains(t, buf.String(), "file only")
	assert.Contains(t, buf.String(), "everywhere")
	assert.Contains(t, buf.String(), "goal=g")
}

func TestLogger_SlogAttributes(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Slog().With(CategoryKey, "watcher").Info("reloaded", "goals", 3)

	assert.Contains(t, readLog(t, dataDir), "[INFO] [global] [watcher] reloaded goals=3")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic or create files.
	logger.Info("g", "test", "test message")
	logger.Error("g", "test", "error message")
}

func TestLogger_CreatesLogsDir(t *testing.T) {
	dataDir := t.TempDir()
	logsDir := filepath.Join(dataDir, domain.LogDirName)

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dataDir, slog.LevelInfo)
	logger.Info("", "test", "test message")
	require.NoError(t, logger.Close())

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
	assert.FileExists(t, domain.LogPath(dataDir))
}
