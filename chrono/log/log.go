package log

import (
	"context"
	"time"
)

// Logger is what every lib-chrono component logs through. Backends live in
// this package (NopLogger, GoLogger) and in chrono/zap.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is a verbosity ceiling: a logger at LevelInfo emits Error, Warn and
// Info entries and drops Debug ones.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the lower-case level name, or "unknown".
func (level Level) String() string {
	if int(level) >= len(levelNames) {
		return "unknown"
	}

	return levelNames[level]
}

// Field is a key/value attribute of a log entry. Build fields with the
// constructors below so backends can encode them with their native types.
type Field struct {
	Key   string
	Value any
}

// String creates a string field. Backends escape control characters in it.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an integer field, used for epoch values and millisecond counts.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Time creates a timestamp field.
func Time(key string, value time.Time) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
