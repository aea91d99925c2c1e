// Package ports defines the core interfaces for the application.
package ports

// Logger is the logging abstraction used across the application.
// Toolchain output is streamed through it line by line, so implementations
// must be safe for concurrent use.
type Logger interface {
	// Debug logs a message only visible in verbose mode.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering zerr cause chains hierarchically.
	Error(err error)
}
