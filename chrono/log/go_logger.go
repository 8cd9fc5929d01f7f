package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"
)

// GoLogger is the Go built-in (log) implementation of Logger.
//
// All string field values and messages are sanitized to prevent log injection.
type GoLogger struct {
	Level  Level
	out    *stdlog.Logger
	fields []Field
	group  string
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing to w at the given verbosity.
// A nil writer falls back to stderr.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Enabled checks if the given level is enabled.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log writes a single line: `[level] [group] [k=v, ...] message`.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	all := make([]Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	parts := make([]string, 0, 4)
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if l.group != "" {
		parts = append(parts, fmt.Sprintf("[%s]", l.group))
	}

	if rendered := renderFields(all); rendered != "" {
		parts = append(parts, rendered)
	}

	parts = append(parts, SanitizeString(msg))

	l.logger().Print(strings.Join(parts, " "))
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	newFields := make([]Field, 0, len(l.fields)+len(fields))
	newFields = append(newFields, l.fields...)
	newFields = append(newFields, fields...)

	return &GoLogger{
		Level:  l.Level,
		out:    l.out,
		fields: newFields,
		group:  l.group,
	}
}

// WithGroup returns a child logger whose lines are tagged with name.
// Nested groups are joined with a dot.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	group := name
	if l.group != "" {
		group = l.group + "." + name
	}

	return &GoLogger{
		Level:  l.Level,
		out:    l.out,
		fields: l.fields,
		group:  group,
	}
}

// Sync is a no-op: the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) logger() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

func renderFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fields))

	for _, f := range fields {
		parts = append(parts, f.Key+"="+renderValue(f.Value))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return SanitizeString(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case error:
		return SanitizeString(v.Error())
	default:
		return fmt.Sprint(v)
	}
}
