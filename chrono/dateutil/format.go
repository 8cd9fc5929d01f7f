package dateutil

import (
	"fmt"
	"strings"
)

// Format is one of the supported text patterns. The zero value is LongDateLine.
type Format uint8

const (
	LongDateLine Format = iota
	LongDateSlash
	LongDateBackslash
	LongDateCompact
	LongDateMillisLine
	LongDateMillisSlash
	LongDateMillisBackslash
	LongDateMillisCompact
	ShortDateLine
	ShortDateSlash
	ShortDateBackslash
	ShortDateCompact
	ShortHourMinute

	formatCount
)

// DefaultFormat is the pattern used when none is given: yyyy-MM-dd HH:mm:ss.
const DefaultFormat = LongDateLine

type formatSpec struct {
	name    string
	pattern string
	layout  string
}

var formatSpecs = [formatCount]formatSpec{
	LongDateLine:            {name: "long-date-line", pattern: "yyyy-MM-dd HH:mm:ss", layout: "2006-01-02 15:04:05"},
	LongDateSlash:           {name: "long-date-slash", pattern: "yyyy/MM/dd HH:mm:ss", layout: "2006/01/02 15:04:05"},
	LongDateBackslash:       {name: "long-date-backslash", pattern: `yyyy\MM\dd HH:mm:ss`, layout: `2006\01\02 15:04:05`},
	LongDateCompact:         {name: "long-date-compact", pattern: "yyyyMMdd HH:mm:ss", layout: "20060102 15:04:05"},
	LongDateMillisLine:      {name: "long-date-millis-line", pattern: "yyyy-MM-dd HH:mm:ss.SSS", layout: "2006-01-02 15:04:05.000"},
	LongDateMillisSlash:     {name: "long-date-millis-slash", pattern: "yyyy/MM/dd HH:mm:ss.SSS", layout: "2006/01/02 15:04:05.000"},
	LongDateMillisBackslash: {name: "long-date-millis-backslash", pattern: `yyyy\MM\dd HH:mm:ss.SSS`, layout: `2006\01\02 15:04:05.000`},
	LongDateMillisCompact:   {name: "long-date-millis-compact", pattern: "yyyyMMdd HH:mm:ss.SSS", layout: "20060102 15:04:05.000"},
	ShortDateLine:           {name: "short-date-line", pattern: "yyyy-MM-dd", layout: "2006-01-02"},
	ShortDateSlash:          {name: "short-date-slash", pattern: "yyyy/MM/dd", layout: "2006/01/02"},
	ShortDateBackslash:      {name: "short-date-backslash", pattern: `yyyy\MM\dd`, layout: `2006\01\02`},
	ShortDateCompact:        {name: "short-date-compact", pattern: "yyyyMMdd", layout: "20060102"},
	ShortHourMinute:         {name: "short-hour-minute", pattern: "HHmm", layout: "1504"},
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	all := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		all = append(all, f)
	}

	return all
}

// IsValid reports whether f is one of the declared constants.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the stable kebab-case name, e.g. "long-date-line".
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("format(%d)", uint8(f))
	}

	return formatSpecs[f].name
}

// Pattern returns the date pattern the format stands for, e.g. "yyyy-MM-dd HH:mm:ss".
func (f Format) Pattern() string {
	if !f.IsValid() {
		return ""
	}

	return formatSpecs[f].pattern
}

// Layout returns the Go reference layout for f. Unknown formats fall back to
// the default layout.
func (f Format) Layout() string {
	if !f.IsValid() {
		return formatSpecs[DefaultFormat].layout
	}

	return formatSpecs[f].layout
}

// HasDate reports whether the pattern carries a calendar date.
func (f Format) HasDate() bool {
	return f.IsValid() && f != ShortHourMinute
}

// HasTime reports whether the pattern carries a time of day.
func (f Format) HasTime() bool {
	return f.IsValid() && (f < ShortDateLine || f == ShortHourMinute)
}

// ParseFormat resolves a format by name (case-insensitive) or by its pattern.
func ParseFormat(s string) (Format, error) {
	trimmed := strings.TrimSpace(s)

	for f := Format(0); f < formatCount; f++ {
		spec := formatSpecs[f]
		if strings.EqualFold(trimmed, spec.name) || trimmed == spec.pattern {
			return f, nil
		}
	}

	return DefaultFormat, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
