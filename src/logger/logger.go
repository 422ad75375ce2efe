// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted and line-based output.
//
// This interface supports both plain CLI mode and interactive TUI mode, allowing
// seamless switching between user-facing output and suppressed output.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// SilentLogger implements Logger with output discarded by default.
// It is used while the interactive terminal UI owns the screen, where writes
// to stdout would corrupt the rendered panes. A writer can still be attached
// with SetOutput to divert messages to a file or stderr for troubleshooting.
//
// SilentLogger is safe for concurrent use by multiple goroutines.
type SilentLogger struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewSilentLogger creates a new silent logger.
// All messages are discarded until SetOutput attaches a destination.
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{writer: io.Discard}
}

// Printf formats and logs a message as a single line.
// Output goes to the attached writer, or nowhere when none is attached.
//
// Printf is safe for concurrent use by multiple goroutines.
func (s *SilentLogger) Printf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)

	s.mu.Lock()
	fmt.Fprintln(s.writer, msg)
	s.mu.Unlock()
}

// Println logs a message as a single line.
// Output goes to the attached writer, or nowhere when none is attached.
//
// Println is safe for concurrent use by multiple goroutines.
func (s *SilentLogger) Println(v ...any) {
	msg := fmt.Sprint(v...)

	s.mu.Lock()
	fmt.Fprintln(s.writer, msg)
	s.mu.Unlock()
}

// SetOutput sets the output destination for the silent logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (s *SilentLogger) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		s.writer = io.Discard
	} else {
		s.writer = w
	}
}
