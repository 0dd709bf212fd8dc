// Package logger provides structured logging for the Consulta CLI,
// backed by zerolog. Console output goes to stderr so it never mixes
// with report data on stdout; an optional file sink captures a full
// debug trail per day. The --verbose flag lowers the console level to
// debug.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	root    = zerolog.New(consoleWriter(os.Stderr)).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	console io.Writer = os.Stderr
	verbose bool
)

// SetVerbose enables or disables debug-level console logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects console logging. Defaults to os.Stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
	rebuild()
}

// SetFile adds a file sink that receives every event at debug level,
// regardless of the console level. Passing nil removes the sink. The
// caller owns the file's lifecycle.
func SetFile(f io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	fileSink = f
	rebuild()
}

// SetLevel sets the console log level from a string ("debug", "info",
// "warn", "error"). Unknown values fall back to info. Verbose mode
// overrides this with debug.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	baseLevel = parseLevel(level)
	rebuild()
}

var (
	baseLevel = zerolog.InfoLevel
	fileSink  io.Writer
)

// rebuild reconstructs the root logger (caller must hold mu).
func rebuild() {
	level := baseLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = consoleWriter(console)
	if fileSink != nil {
		// File receives everything; the console level is applied per
		// event below via the logger level, so the file needs its own
		// unfiltered path.
		w = zerolog.MultiLevelWriter(levelCappedWriter{w: consoleWriter(console), min: level}, fileSink)
		level = zerolog.DebugLevel
	}

	root = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// consoleWriter wraps w in zerolog's human-readable console format.
func consoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
}

// levelCappedWriter drops events below min, so the console stays quiet
// while the file sink records the full trail.
type levelCappedWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (l levelCappedWriter) Write(p []byte) (int, error) {
	return l.w.Write(p)
}

func (l levelCappedWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < l.min {
		return len(p), nil
	}
	return l.w.Write(p)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	root.Debug().Msgf(format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	root.Info().Msgf(format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	root.Warn().Msgf(format, args...)
}

// Error logs a formatted message at error level.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	root.Error().Msgf(format, args...)
}
