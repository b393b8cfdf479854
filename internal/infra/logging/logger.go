// Package logging provides file-based logging for issue-import.
// Entries are appended to <dir>/issue-import.log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/issue-import/internal/domain"
)

// Logger writes leveled entries to a log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	now   func() time.Time
	dir   string
	mu    sync.Mutex
	level slog.Level
}

// New creates a new Logger that writes to dir.
// If dir is empty, logging is disabled (returns a no-op logger).
func New(dir string, level slog.Level) *Logger {
	return &Logger{
		dir:   dir,
		level: level,
		now:   time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the log file path, or "" when logging is disabled.
func (l *Logger) Path() string {
	if l.dir == "" {
		return ""
	}
	return filepath.Join(l.dir, domain.LogFileName)
}

// ensureFile opens or returns the log file. Callers hold l.mu.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(l.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [run-id] [category] message
func formatLog(t time.Time, level slog.Level, runID, category, msg string) string {
	if runID == "" {
		runID = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		runID,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, runID, category, msg string) {
	if l.dir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, runID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(runID, category, msg string) {
	l.log(slog.LevelInfo, runID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(runID, category, msg string) {
	l.log(slog.LevelDebug, runID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(runID, category, msg string) {
	l.log(slog.LevelWarn, runID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(runID, category, msg string) {
	l.log(slog.LevelError, runID, category, msg)
}
