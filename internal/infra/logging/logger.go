// Package logging provides file-based logging for goals.
// Entries go to <data-dir>/logs/goals.log and, optionally, to extra
// slog handlers such as stderr.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"

	"github.com/runoshun/goals/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Attribute keys carried by every entry.
const (
	GoalKey     = "goal"
	CategoryKey = "category"
)

// Logger adapts a slog.Logger to domain.Logger.
// Fields are ordered to minimize memory padding.
type Logger struct {
	slog *slog.Logger
	sink *fileSink
}

// New creates a Logger writing to the log file inside dataDir, fanned out
// to any extra handlers. If dataDir is empty the file is skipped; with no
// extra handlers either, the logger discards everything.
func New(dataDir string, level slog.Level, extra ...slog.Handler) *Logger {
	handlers := make([]slog.Handler, 0, len(extra)+1)
	var sink *fileSink
	if dataDir != "" {
		sink = &fileSink{path: domain.LogPath(dataDir)}
		handlers = append(handlers, newLineHandler(sink, level))
	}
	handlers = append(handlers, extra...)

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = discardHandler{}
	case 1:
		handler = handlers[0]
	default:
		handler = slogmulti.Fanout(handlers...)
	}
	return &Logger{slog: slog.New(handler), sink: sink}
}

// StderrHandler returns a text handler on stderr for entries at or above level.
func StderrHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

func (l *Logger) log(level slog.Level, goalID, category, msg string) {
	l.slog.Log(context.Background(), level, msg, slog.String(GoalKey, goalID), slog.String(CategoryKey, category))
}

// Info logs an info message.
func (l *Logger) Info(goalID, category, msg string) {
	l.log(slog.LevelInfo, goalID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(goalID, category, msg string) {
	l.log(slog.LevelDebug, goalID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(goalID, category, msg string) {
	l.log(slog.LevelWarn, goalID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(goalID, category, msg string) {
	l.log(slog.LevelError, goalID, category, msg)
}

// fileSink appends to the log file, opening it on first write.
type fileSink struct {
	f    *os.File
	path string
	mu   sync.Mutex
}

func (s *fileSink) WriteString(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
			return fmt.Errorf("create logs directory: %w", err)
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		s.f = f
	}
	_, err := io.WriteString(s.f, entry)
	return err
}

func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// lineHandler is a slog.Handler producing one line per entry:
// [2026-03-14 09:32:51] [INFO] [<goal>|global] [category] message key=value...
type lineHandler struct {
	sink  *fileSink
	attrs []slog.Attr
	level slog.Level
}

func newLineHandler(sink *fileSink, level slog.Level) *lineHandler {
	return &lineHandler{sink: sink, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	goalID, category := "", ""
	var rest []slog.Attr
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case GoalKey:
			goalID = a.Value.String()
		case CategoryKey:
			category = a.Value.String()
		default:
			rest = append(rest, a)
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	return h.sink.WriteString(formatLog(t, r.Level, goalID, category, r.Message, rest))
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup is a no-op; entries are flat.
func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}

// formatLog formats a log entry.
// Format: [2026-03-14 09:32:51] [INFO] [01J...] [category] message
func formatLog(t time.Time, level slog.Level, goalID, category, msg string, attrs []slog.Attr) string {
	target := goalID
	if target == "" {
		target = "global"
	}
	line := fmt.Sprintf("[%s] [%s] [%s] [%s] %s",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		target,
		category,
		msg,
	)
	for _, a := range attrs {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
	}
	return line + "\n"
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
