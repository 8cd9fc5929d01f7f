package zap

import (
	"context"
	"time"

	logpkg "github.com/LerianStudio/lib-chrono/chrono/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a *zap.Logger to log.Logger.
type Logger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

var _ logpkg.Logger = (*Logger)(nil)

var zapLevels = [...]zapcore.Level{
	logpkg.LevelError: zapcore.ErrorLevel,
	logpkg.LevelWarn:  zapcore.WarnLevel,
	logpkg.LevelInfo:  zapcore.InfoLevel,
	logpkg.LevelDebug: zapcore.DebugLevel,
}

// Wrap adapts an existing zap logger. A nil logger drops everything.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

func (l *Logger) zap() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log writes one entry. Unknown levels are logged at info. When ctx carries a
// valid span the entry gets trace_id and span_id.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zl := l.zap()

	ce := zl.Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}

	ce.Write(append(toZapFields(fields), traceFields(ctx)...)...)
}

// With returns a child logger carrying fields. The parent is not modified.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{base: l.zap().With(toZapFields(fields)...), level: l.Level()}
}

// WithGroup returns a child logger whose later fields nest under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return &Logger{base: l.zap().With(zap.Namespace(name)), level: l.Level()}
}

// Enabled reports whether level passes the core.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.zap().Core().Enabled(toZapLevel(level))
}

// Sync flushes the core, giving up when ctx ends first.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.zap().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Level returns the adjustable level of loggers built with New. For wrapped
// loggers it reports the core's level at call time.
func (l *Logger) Level() zap.AtomicLevel {
	if l != nil && l.level != (zap.AtomicLevel{}) {
		return l.level
	}

	if l == nil {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return zap.NewAtomicLevelAt(zapcore.LevelOf(l.zap().Core()))
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	if int(level) >= len(zapLevels) {
		return zapcore.InfoLevel
	}

	return zapLevels[level]
}

func toZapFields(fields []logpkg.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))

	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case time.Time:
			out = append(out, zap.Time(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}

	return out
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}
