// Package logger implements the five-severity logging adapter using
// log/slog, patterned on the teacher's slog-backed logger adapter.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lacc97/libloot/internal/core/ports"
)

// levelTrace sits below slog's built-in Debug level, the same way
// structured loggers commonly extend their level set downward.
const levelTrace = slog.LevelDebug - 4

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog. Swapping the output
// destination is thread-safe; log calls themselves take a read lock so
// concurrent logging from the game cache's callers never races a
// SetOutput call.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a Logger writing human-readable text to stderr.
func New() *Logger {
	return &Logger{logger: newTextLogger(os.Stderr)}
}

func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelTrace}))
}

// SetOutput redirects subsequent log output to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newTextLogger(w)
}

func (l *Logger) log(level slog.Level, msg string) {
	l.mu.RLock()
	logger := l.logger
	l.mu.RUnlock()
	logger.Log(context.Background(), level, msg)
}

// Trace logs at the lowest severity, used for per-edge/per-phase detail
// during sorting.
func (l *Logger) Trace(msg string) { l.log(levelTrace, msg) }

// Debug logs diagnostic detail below Info.
func (l *Logger) Debug(msg string) { l.log(slog.LevelDebug, msg) }

// Info logs routine progress.
func (l *Logger) Info(msg string) { l.log(slog.LevelInfo, msg) }

// Warn logs a recoverable anomaly (e.g. a non-unique calculated order).
func (l *Logger) Warn(msg string) { l.log(slog.LevelWarn, msg) }

// Error logs a failure the caller should be made aware of.
func (l *Logger) Error(msg string) { l.log(slog.LevelError, msg) }
