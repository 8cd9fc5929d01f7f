package dateutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Duration is the signed distance between two instants at nanosecond
// precision. Integer conversions truncate toward zero.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String renders d like time.Duration.
func (d Duration) String() string { return time.Duration(d).String() }

// Sign returns -1, 0 or +1.
func (d Duration) Sign() int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether d is zero.
func (d Duration) IsZero() bool { return d == 0 }

// IsNegative reports whether d is below zero.
func (d Duration) IsNegative() bool { return d < 0 }

// Abs returns the absolute value of d, saturating at the maximum duration.
func (d Duration) Abs() Duration { return Duration(time.Duration(d).Abs()) }

// Nanoseconds returns d in nanoseconds.
func (d Duration) Nanoseconds() int64 { return int64(d) }

// Milliseconds returns d in whole milliseconds.
func (d Duration) Milliseconds() int64 { return time.Duration(d).Milliseconds() }

// Seconds returns d in whole seconds.
func (d Duration) Seconds() int64 { return int64(d) / int64(time.Second) }

// Minutes returns d in whole minutes.
func (d Duration) Minutes() int64 { return int64(d) / int64(time.Minute) }

// Hours returns d in whole hours.
func (d Duration) Hours() int64 { return int64(d) / int64(time.Hour) }

// Days returns d in whole 24-hour days.
func (d Duration) Days() int64 { return int64(d) / int64(day) }

// In returns d expressed in unit as an exact decimal, e.g. 90m in hours is 1.5.
func (d Duration) In(unit time.Duration) (decimal.Decimal, error) {
	if unit <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidUnit, unit)
	}

	return decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(unit))), nil
}
