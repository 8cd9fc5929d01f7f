// Package clock provides the time source injected into lib-chrono utilities.
//
// System reads the wall clock on every call, Cached serves a timestamp that a
// background ticker refreshes at a fixed resolution, and Fixed is a settable
// clock for deterministic tests.
package clock
