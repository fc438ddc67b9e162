// Package logger prints diagnostic output for the askpdf CLI. Nothing is
// written unless verbose mode is switched on (the --verbose flag or the
// verbose config key), after which each line goes to stderr so users can
// watch requests flow between the client and the document service.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	clock             = time.Now
)

// SetVerbose switches verbose logging on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose logging is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log lines away from os.Stderr. Tests use this to
// capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs fine-grained progress detail.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info logs notable events.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn logs recoverable problems.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section marks the start of a new phase in the log.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// logf writes one timestamped line. A single Fprintf keeps lines
// whole when goroutines log concurrently.
func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(output, "%s [%s] %s\n", clock().Format("15:04:05.000"), level, msg)
}
