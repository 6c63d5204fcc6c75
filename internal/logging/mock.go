package logging

import "sync"

// MockLogger captures log entries for verification in tests. Loggers
// derived via WithError/WithField/WithFields record into the root logger's
// entry list, so assertions on the root see everything. Recording is
// mutex-guarded; worker pools log from several goroutines.
type MockLogger struct {
	Entries       []LogEntry
	mu            sync.Mutex
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger creates a MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	target := m
	if m.root != nil {
		target = m.root
	}
	target.mu.Lock()
	defer target.mu.Unlock()
	target.Entries = append(target.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) derive() *MockLogger {
	root := m
	if m.root != nil {
		root = m.root
	}
	return &MockLogger{
		root:          root,
		pendingError:  m.pendingError,
		pendingFields: m.pendingFields,
	}
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry without exiting, unlike the real implementation.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// WithError returns a new logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	child := m.derive()
	child.pendingError = err
	return child
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	child := m.derive()
	child.pendingFields = append(append([]Field{}, m.pendingFields...), fields...)
	return child
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
