package chrono

import (
	"context"

	"github.com/LerianStudio/lib-chrono/chrono/log"
)

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("chrono_context")

// CustomContextKeyValue holds the facilities lib-chrono attaches to a context.
type CustomContextKeyValue struct {
	Logger log.Logger
}

// NewLoggerFromContext extracts the Logger stored by ContextWithLogger,
// falling back to a NopLogger.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if ctx == nil {
		return &log.NopLogger{}
	}

	if customContext, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		customContext.Logger != nil {
		return customContext.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	values := &CustomContextKeyValue{}
	if existing, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && existing != nil {
		copied := *existing
		values = &copied
	}

	values.Logger = logger

	return context.WithValue(ctx, CustomContextKey, values)
}
