// Package logging provides a small logging abstraction so the extraction
// pipeline is not coupled to a specific logging framework.
package logging

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)
}

var defaultLogger Logger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	return defaultLogger
}

// SetLogger replaces the process-wide default logger. A nil logger is
// ignored.
func SetLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging. Using these constants
// keeps the log output consistent and easy to filter.
const (
	FieldDocument    = "document"
	FieldInstitution = "institution"
	FieldType        = "statement_type"
	FieldStrategy    = "strategy"
	FieldCategory    = "category"
	FieldCount       = "count"
	FieldWorkers     = "workers"
	FieldRunID       = "run_id"
	FieldFile        = "file_path"
)
