package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger writing to .anagrow/logs/anagrow.log. A
// full-screen TUI owns stdout, so everything goes to the file; users can
// inspect a session even after the terminal is cleared.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New creates (or reuses) the log file in logsDir at the given level.
// Unparseable levels fall back to info.
func New(logsDir, level string) (*Logger, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logsDir, "anagrow.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return &Logger{Logger: logger, file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
