package dateutil

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidFormat is matched by every *FormatError.
	ErrInvalidFormat = errors.New("date string does not match format")
	// ErrInvalidRange is matched by every *InvalidRangeError.
	ErrInvalidRange = errors.New("range start is after range end")
	// ErrUnknownFormat is returned for names or values that are not a declared Format.
	ErrUnknownFormat = errors.New("unknown date format")
	// ErrInvalidUnit is returned when a duration is converted into a non-positive unit.
	ErrInvalidUnit = errors.New("duration unit must be positive")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid date utility config")
)

// FormatError reports text that could not be parsed with a format.
type FormatError struct {
	Text   string
	Format Format
	Err    error
}

// Error returns a message naming the input and the expected pattern.
func (e *FormatError) Error() string {
	if e == nil {
		return ErrInvalidFormat.Error()
	}

	msg := fmt.Sprintf("%s: %q does not match %q", ErrInvalidFormat.Error(), e.Text, e.Format.Pattern())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrInvalidFormat and the underlying cause.
func (e *FormatError) Unwrap() []error {
	if e == nil {
		return []error{ErrInvalidFormat}
	}

	if e.Err == nil {
		return []error{ErrInvalidFormat}
	}

	return []error{ErrInvalidFormat, e.Err}
}

// InvalidRangeError reports a range whose start is after its end.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

// Error returns a message carrying both bounds.
func (e *InvalidRangeError) Error() string {
	if e == nil {
		return ErrInvalidRange.Error()
	}

	return fmt.Sprintf("%s: start %s, end %s",
		ErrInvalidRange.Error(),
		e.Start.Format(LongDateMillisLine.Layout()),
		e.End.Format(LongDateMillisLine.Layout()),
	)
}

// Unwrap returns ErrInvalidRange for errors.Is.
func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
