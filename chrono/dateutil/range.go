package dateutil

import "time"

// Range is a closed interval of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a validated Range.
func NewRange(start, end time.Time) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate fails with an *InvalidRangeError when Start is after End.
func (r Range) Validate() error {
	if r.Start.After(r.End) {
		return &InvalidRangeError{Start: r.Start, End: r.End}
	}

	return nil
}

// Contains reports whether Start <= t <= End.
func (r Range) Contains(t time.Time) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	return !t.Before(r.Start) && !t.After(r.End), nil
}

// Duration returns End minus Start.
func (r Range) Duration() Duration {
	return Between(r.Start, r.End)
}
