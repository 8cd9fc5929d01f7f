// Package log defines the logging interface and typed logging fields used across lib-chrono.
//
// Adapters (such as the zap package) implement Logger so callers can keep
// logging calls consistent across backends. NopLogger is the default everywhere
// a logger is optional.
package log
