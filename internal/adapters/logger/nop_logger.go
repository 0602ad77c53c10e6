package logger

import "github.com/baditaflorin/go_list_reverse/internal/ports"

// NopLogger discards every message.
type NopLogger struct{}

// NewNopLogger returns a logger that writes nothing.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

// Debug discards a debug message.
func (NopLogger) Debug(string, ...interface{}) {}

// Info discards an info message.
func (NopLogger) Info(string, ...interface{}) {}

// Warn discards a warning message.
func (NopLogger) Warn(string, ...interface{}) {}

// Error discards an error message.
func (NopLogger) Error(string, ...interface{}) {}

// Close does nothing.
func (NopLogger) Close() error { return nil }
