package dateutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/LerianStudio/lib-chrono/chrono/clock"
	"github.com/LerianStudio/lib-chrono/chrono/cron"
	"github.com/LerianStudio/lib-chrono/chrono/log"
)

const millisPerSecond = 1000

var midnight = cron.MustParse(cron.Midnight)

// Util binds the clock, location, default format and logger used by the
// operations that need them. A Util is immutable and safe for concurrent use.
type Util struct {
	clock  clock.Clock
	loc    *time.Location
	format Format
	logger log.Logger
}

// Option configures a Util.
type Option func(*Util)

// WithClock sets the time source. A nil clock is ignored.
func WithClock(c clock.Clock) Option {
	return func(u *Util) {
		if c != nil {
			u.clock = c
		}
	}
}

// WithLocation sets the zone parsed values and Now are expressed in. A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(u *Util) {
		if loc != nil {
			u.loc = loc
		}
	}
}

// WithDefaultFormat sets the format used by Parse, Format and IsValidDateString.
// Undeclared formats are ignored.
func WithDefaultFormat(f Format) Option {
	return func(u *Util) {
		if f.IsValid() {
			u.format = f
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return func(u *Util) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// New builds a Util. Without options it reads the system clock, works in
// time.Local, uses LongDateLine and does not log.
func New(opts ...Option) *Util {
	u := &Util{
		clock:  clock.System{},
		loc:    time.Local,
		format: DefaultFormat,
		logger: &log.NopLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}

	return u
}

// Location returns the zone parsed values and Now are expressed in.
func (u *Util) Location() *time.Location { return u.loc }

// DefaultFormat returns the format used when none is given.
func (u *Util) DefaultFormat() Format { return u.format }

// Parse parses text with the default format.
func (u *Util) Parse(text string) (time.Time, error) {
	return u.ParseWith(text, u.format)
}

// ParseWith parses text with format f into the utility's location.
//
// The text must match the pattern exactly: Go's parser accepts one-digit
// hours and trailing fractional seconds, so the parsed value is rendered back
// and compared with the input. Fields the pattern lacks default to the start
// of the day (date-only patterns) or to January 1st of year 0 (HHmm).
func (u *Util) ParseWith(text string, f Format) (time.Time, error) {
	if !f.IsValid() {
		return time.Time{}, &FormatError{Text: text, Format: f, Err: ErrUnknownFormat}
	}

	layout := f.Layout()

	// Parsed in UTC first so that wall-clock fields survive untouched even when
	// they fall into a DST gap of the target location.
	naive, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, &FormatError{Text: text, Format: f, Err: err}
	}

	if rendered := naive.Format(layout); rendered != text {
		return time.Time{}, &FormatError{
			Text:   text,
			Format: f,
			Err:    fmt.Errorf("input is not in canonical form, expected %q", rendered),
		}
	}

	return wallClockIn(naive, u.loc), nil
}

// Format renders t with the default format.
func (u *Util) Format(t time.Time) string {
	return FormatWith(t, u.format)
}

// Now returns the clock's current time in the utility's location.
func (u *Util) Now() time.Time {
	return u.clock.Now().In(u.loc)
}

// CurrentDateTime renders Now with the default format.
func (u *Util) CurrentDateTime() string {
	return FormatWith(u.Now(), u.format)
}

// CurrentDateTimeWith renders Now with format f.
func (u *Util) CurrentDateTimeWith(f Format) string {
	return FormatWith(u.Now(), f)
}

// CurrentEpochMillis returns the clock's current time in milliseconds since the Unix epoch.
func (u *Util) CurrentEpochMillis() int64 {
	return u.clock.Now().UnixMilli()
}

// CurrentEpochSeconds returns CurrentEpochMillis truncated to seconds.
func (u *Util) CurrentEpochSeconds() int64 {
	return u.CurrentEpochMillis() / millisPerSecond
}

// IsValidDateString reports whether text parses with the default format.
// Parse failures are logged at debug level and reported as false.
func (u *Util) IsValidDateString(text string) bool {
	if _, err := u.Parse(text); err != nil {
		if u.logger.Enabled(log.LevelDebug) {
			u.logger.Log(context.Background(), log.LevelDebug, "rejected date string",
				log.String("text", log.SanitizeString(text)),
				log.String("format", u.format.String()),
				log.Err(err),
			)
		}

		return false
	}

	return true
}

// MillisecondsUntilMidnight returns the milliseconds left until the next
// day starts in the utility's location. At exactly midnight it returns a full
// day. When DST skips the coming midnight it counts to the end of the gap.
func (u *Util) MillisecondsUntilMidnight() int64 {
	now := u.Now()
	next := nextDayStart(now)

	until, err := cron.Until(midnight, now)
	if err != nil {
		u.logger.Log(context.Background(), log.LevelWarn, "midnight schedule failed, using calendar arithmetic",
			log.Time("now", now),
			log.Err(err),
		)
	}

	// The schedule only matches a 00:00 wall clock, so it misses a skipped midnight.
	if err != nil || now.Add(until).After(next) {
		until = next.Sub(now)
	}

	return until.Milliseconds()
}

// AddDays returns the epoch milliseconds of Now plus n calendar days.
func (u *Util) AddDays(n int) int64 {
	return u.Now().AddDate(0, 0, n).UnixMilli()
}

// SubtractDays returns the epoch milliseconds of Now minus n calendar days.
func (u *Util) SubtractDays(n int) int64 {
	return u.AddDays(-n)
}

// FormatWith renders the wall clock of t with format f. Undeclared formats
// render with the default pattern.
func FormatWith(t time.Time, f Format) string {
	return t.Format(f.Layout())
}

// Between returns end minus start, saturating at the time.Duration range.
func Between(start, end time.Time) Duration {
	return Duration(end.Sub(start))
}

// Compare returns -1, 0 or +1 as a is before, equal to or after b.
func Compare(a, b time.Time) int {
	return Between(b, a).Sign()
}

// IsWithinRange reports whether start <= point <= end. It fails with an
// *InvalidRangeError when start is after end.
func IsWithinRange(point, start, end time.Time) (bool, error) {
	return Range{Start: start, End: end}.Contains(point)
}

func wallClockIn(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), loc)
}

var defaultUtil atomic.Pointer[Util]

func init() {
	defaultUtil.Store(New())
}

// Default returns the Util behind the package-level functions.
func Default() *Util {
	return defaultUtil.Load()
}

// SetDefault replaces the Util behind the package-level functions and returns
// the previous one. A nil Util is ignored.
func SetDefault(u *Util) *Util {
	if u == nil {
		return Default()
	}

	return defaultUtil.Swap(u)
}

// Parse parses text with the default Util.
func Parse(text string) (time.Time, error) { return Default().Parse(text) }

// ParseWith parses text with format f using the default Util.
func ParseWith(text string, f Format) (time.Time, error) { return Default().ParseWith(text, f) }

// FormatTime renders t with the default Util's format.
func FormatTime(t time.Time) string { return Default().Format(t) }

// Now returns the default Util's current time.
func Now() time.Time { return Default().Now() }

// CurrentDateTime renders the current time with the default Util's format.
func CurrentDateTime() string { return Default().CurrentDateTime() }

// CurrentDateTimeWith renders the current time with format f.
func CurrentDateTimeWith(f Format) string { return Default().CurrentDateTimeWith(f) }

// CurrentEpochMillis returns the default Util's clock in epoch milliseconds.
func CurrentEpochMillis() int64 { return Default().CurrentEpochMillis() }

// CurrentEpochSeconds returns the default Util's clock in epoch seconds.
func CurrentEpochSeconds() int64 { return Default().CurrentEpochSeconds() }

// IsValidDateString reports whether text parses with the default Util's format.
func IsValidDateString(text string) bool { return Default().IsValidDateString(text) }

// MillisecondsUntilMidnight returns the milliseconds left until local midnight.
func MillisecondsUntilMidnight() int64 { return Default().MillisecondsUntilMidnight() }

// AddDays returns the epoch milliseconds of now plus n days.
func AddDays(n int) int64 { return Default().AddDays(n) }

// SubtractDays returns the epoch milliseconds of now minus n days.
func SubtractDays(n int) int64 { return Default().SubtractDays(n) }
