package debug

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	enabled bool
	logFile *os.File
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	mu      sync.Mutex
)

// Enable turns on JSON logging to the specified file.
func Enable(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	setWriter(f, level)

	logger.Info("debug logging enabled", "path", path)
	return nil
}

// UseWriter sends JSON logs to w. Used by long-running commands that own
// the terminal's stderr.
func UseWriter(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	setWriter(w, level)
}

func setWriter(w io.Writer, level string) {
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	enabled = true
}

// Close closes the debug log file and discards further output.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled = false
}

// IsEnabled returns whether logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a debug-level message with key-value attributes.
func Log(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log(name + " started")

	return func() {
		Log(name+" completed", "duration", time.Since(start))
	}
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
