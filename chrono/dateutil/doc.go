// Package dateutil parses, formats, compares and bounds local date-time values.
//
// Values are plain time.Time. Parsing produces values in the utility's
// configured location (time.Local unless told otherwise); every other
// operation works on the wall clock of the value it is given and never
// converts between zones.
//
// Text patterns are a closed set of Format constants:
//
//	t, err := dateutil.Parse("2021-06-15 10:30:00")
//	day := dateutil.FormatWith(t, dateutil.ShortDateSlash) // "2021/06/15"
//
// Functions that read the clock (Now, CurrentEpochMillis, AddDays,
// MillisecondsUntilMidnight) go through an injected clock.Clock; build a Util
// with WithClock(clock.NewFixed(...)) to make them deterministic.
//
// Day, month and year ends are 23:59:00, not the last nanosecond of the period.
package dateutil
