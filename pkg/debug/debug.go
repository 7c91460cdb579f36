// Package debug is the diagnostic channel for widget code.
//
// When the CONTROLS_DEBUG environment variable names a file, messages are
// appended to it through a size-rotated log. Otherwise logging is a no-op
// until SetOutput installs a writer.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "CONTROLS_DEBUG"

var (
	out      io.Writer
	rotating *lumberjack.Logger
	resolved bool
	mu       sync.Mutex
)

// Init directs debug logging to a rotating file at path.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug: empty log path")
	}
	closeLocked()
	rotating = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	out = rotating
	resolved = true
	return nil
}

// SetOutput replaces the log sink and returns the previous one. A nil writer
// disables logging.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	if rotating != nil && w != io.Writer(rotating) {
		prev = nil
		closeLocked()
	}
	out = w
	resolved = true
	return prev
}

// Close releases the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if rotating == nil {
		return nil
	}
	err := rotating.Close()
	if out == io.Writer(rotating) {
		out = nil
	}
	rotating = nil
	return err
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !resolved {
		resolved = true
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	}
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
