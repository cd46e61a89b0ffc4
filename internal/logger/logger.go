// Package logger configures the structured logger used by long-running commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/switchride/internal/config"
)

// Logger wraps logrus with the output file it may own.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// New builds a logger from config. Unknown levels fall back to info. If the
// log file cannot be opened the logger writes to stderr and says so.
func New(cfg config.LoggerConfig) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})
	}

	out := &Logger{Logger: l}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path from user config
		if err != nil {
			l.WithError(err).Warn("log file unavailable, using stderr")
		} else {
			out.file = f
			l.SetOutput(f)
		}
	}
	return out
}

// NewDiscard returns a logger that drops everything. Used in tests.
func NewDiscard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	l.file = nil
	return nil
}
