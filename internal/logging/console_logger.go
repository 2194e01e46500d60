package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/vvka-141/includefolder/internal/tui"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// ConsoleLogger writes log records to stderr through a tint slog handler.
// Verbose maps to slog.LevelDebug and is dropped unless verbose mode is on.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a ConsoleLogger on stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose, !tui.ColorEnabled(os.Stderr))
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w. Timestamps are
// omitted so output stays stable for go:generate logs and tests.
func NewConsoleLoggerTo(w io.Writer, verbose, noColor bool) *ConsoleLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return &ConsoleLogger{logger: slog.New(handler)}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.log(slog.LevelDebug, format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.log(slog.LevelInfo, format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log(slog.LevelError, format, args...)
}

func (l *ConsoleLogger) log(level slog.Level, format string, args ...interface{}) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.logger.Log(ctx, level, msg)
}

var _ includefolder.Logger = (*ConsoleLogger)(nil)
