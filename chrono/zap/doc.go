// Package zap provides a go.uber.org/zap backend for the chrono/log interface.
//
// Log entries carry trace_id and span_id when the context holds an active
// OpenTelemetry span, and New tees every entry into the OTel log bridge.
package zap
