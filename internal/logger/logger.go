// Package logger configures the diagnostic logger used by kvsh. Diagnostics
// never go to standard output, which carries only prompts and command
// results.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"Kvsh/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. The returned Closer releases the log file
// when one is configured and is a no-op otherwise.
func New(cfg config.Log) (*log.Logger, io.Closer, error) {

	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("kvsh: logger: %w", err)
		}
		output, closer = file, file
	}

	logger := NewWriter(output, cfg.Level)
	return logger, closer, nil
}

// NewWriter returns a logger writing to w at the named level.
func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  ParseLevel(level),
		Prefix: "kvsh",
	})
	logger.SetTimeFormat("")
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWriter(io.Discard, "error")
}

// ParseLevel converts debug, info, warn or error to a log.Level. Any other
// name yields warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
