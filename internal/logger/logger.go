// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It discards output until Init is called, so
// packages can log from tests without setup.
var Log = newDiscard()

// Options selects level, format and destination.
type Options struct {
	Level  string // logrus level name, "info" when empty or invalid
	Format string // "json" or "text"
	Output io.Writer
}

// Init configures Log. It is called once from main.
func Init(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}

// OpenFile opens path for appending, creating parent directories as needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
