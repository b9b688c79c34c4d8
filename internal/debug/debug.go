// Package debug provides the file-backed debug log shared by the spinner and
// the demo program.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"ringspin/pkg/config"
)

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile *os.File
}

// NewDebugLogger creates a debug logger writing to ~/.ringspin/debug.log
func NewDebugLogger() *DebugLogger {
	// Ensure .ringspin directory exists
	if err := config.EnsureConfigDir(); err != nil {
		// Fall back to stderr if directory creation fails
		fmt.Fprintf(os.Stderr, "Warning: Failed to create config directory: %v\n", err)
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		dir = "."
	}

	logFile, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = os.Stderr
	}

	d := newDebugLogger(logFile)
	d.logFile = logFile
	return d
}

func newDebugLogger(w io.Writer) *DebugLogger {
	logger := log.New(w, "[DEBUG] ", log.LstdFlags|log.Lshortfile)
	logger.Println("=== Debug session started ===")
	return &DebugLogger{logger: logger}
}

// Log adds a message using Go's standard logger
func (d *DebugLogger) Log(format string, args ...interface{}) {
	d.output(3, format, args...)
}

// output writes a message attributed to the caller depth frames up.
func (d *DebugLogger) output(depth int, format string, args ...interface{}) {
	if d == nil {
		return
	}
	_ = d.logger.Output(depth, fmt.Sprintf(format, args...))
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	if d == nil {
		return
	}
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

// Global debug logger instance
var globalDebugLogger *DebugLogger

// DebugLog logs a message to the global debug logger
func DebugLog(format string, args ...interface{}) {
	if globalDebugLogger != nil {
		globalDebugLogger.output(3, format, args...)
	}
}

// InitDebugLogger initializes the global debug logger
func InitDebugLogger() *DebugLogger {
	globalDebugLogger = NewDebugLogger()
	return globalDebugLogger
}
