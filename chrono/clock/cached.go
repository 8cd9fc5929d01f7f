package clock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/LerianStudio/lib-chrono/chrono/log"
)

// ErrInvalidResolution is returned when a cached clock is given a non-positive resolution.
var ErrInvalidResolution = errors.New("clock resolution must be positive")

// Cached serves a timestamp refreshed by one background goroutine every
// resolution. Readers never call time.Now themselves, so Now costs a single
// atomic load; the value lags the wall clock by at most one resolution.
type Cached struct {
	nanos      atomic.Int64
	resolution time.Duration
	logger     log.Logger
	source     func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewCached starts a cached clock. It stops when ctx is cancelled or Stop is called.
func NewCached(ctx context.Context, resolution time.Duration, logger log.Logger) (*Cached, error) {
	return newCached(ctx, resolution, logger, time.Now)
}

func newCached(ctx context.Context, resolution time.Duration, logger log.Logger, source func() time.Time) (*Cached, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidResolution, resolution)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	c := &Cached{
		resolution: resolution,
		logger:     log.OrNop(logger),
		source:     source,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	c.nanos.Store(source().UnixNano())

	c.logger.Log(ctx, log.LevelDebug, "cached clock started", log.Duration("resolution", resolution))

	go c.run(ctx)

	return c, nil
}

// Now returns the last refreshed time in the local zone.
func (c *Cached) Now() time.Time {
	return time.Unix(0, c.nanos.Load())
}

// Resolution returns the refresh interval.
func (c *Cached) Resolution() time.Duration {
	return c.resolution
}

// Stop halts the refresh goroutine and waits for it to exit. Now keeps
// returning the last refreshed value. Calling Stop more than once is safe.
func (c *Cached) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})

	<-c.done
}

// Done is closed once the refresh goroutine has exited.
func (c *Cached) Done() <-chan struct{} {
	return c.done
}

func (c *Cached) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Log(context.WithoutCancel(ctx), log.LevelDebug, "cached clock stopped", log.Err(ctx.Err()))
			return
		case <-c.stop:
			c.logger.Log(context.WithoutCancel(ctx), log.LevelDebug, "cached clock stopped")
			return
		case <-ticker.C:
			c.nanos.Store(c.source().UnixNano())
		}
	}
}
