//go:build unit

package dateutil

import (
	"testing"
	"time"
	_ "time/tzdata"

	chronozap "github.com/LerianStudio/lib-chrono/chrono/zap"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	return loc
}

func newObservedLogger(level zapcore.Level) (*chronozap.Logger, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return chronozap.Wrap(zap.New(core)), observed
}
