package logging

import (
	"io"
	"sync"
	"time"
)

// Level is the minimum severity a logger will emit.
type Level int

const (
	// DebugLevel traces individual graph edits and resample calls.
	DebugLevel Level = iota
	// InfoLevel is the default for the dashboard server.
	InfoLevel
	// WarnLevel covers recoverable oddities such as unknown KPI keys
	// in an engine payload.
	WarnLevel
	// ErrorLevel covers failures surfaced to the caller, like an
	// unreachable simulation engine.
	ErrorLevel
)

// String returns the uppercase name used in the JSON output.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to Info for
// anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "INFO", "info":
		return InfoLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is one key-value pair attached to a log entry. Use the
// constructors in this package (FlowsheetID, MetricKey, ...) so field
// names stay consistent across the server.
type Field struct {
	Key   string
	Value any
}

// Logger is the structured logging interface threaded through the
// server and the simulation client.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child logger with the given fields pre-set,
	// used to scope a logger to one flowsheet or one run.
	With(fields ...Field) Logger
	SetLevel(level Level)
	GetLevel() Level
}

// JSONLogger writes one JSON object per entry. The mutex serializes
// writes so concurrent handlers do not interleave lines.
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     sync.Mutex
}

// LogEntry is the wire shape of a single line.
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NopLogger discards everything. Library types default to it so a
// flowsheet or client is usable without wiring a logger.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}
func (NopLogger) GetLevel() Level                   { return InfoLevel }

// NewNopLogger returns a logger that discards all output.
func NewNopLogger() Logger {
	return NopLogger{}
}

// TimedOperation measures the duration of one operation, such as an
// engine submission, and logs it on End.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}
