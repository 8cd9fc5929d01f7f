package cron

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidExpression is returned when a cron expression cannot be parsed
// due to incorrect field count, out-of-range values, or malformed syntax.
var ErrInvalidExpression = errors.New("invalid cron expression")

// ErrNoMatch is returned when Next exhausts its iteration limit without
// finding a time that satisfies all cron fields.
var ErrNoMatch = errors.New("cron: no matching time found within iteration limit")

// ErrNilSchedule is returned when Next is called on a nil schedule receiver.
var ErrNilSchedule = errors.New("cron schedule is nil")

// Midnight is the expression for the start of every day.
const Midnight = "0 0 * * *"

const (
	cronFieldCount = 5
	maxMinute      = 59
	maxHour        = 23
	minDayOfMonth  = 1
	maxDayOfMonth  = 31
	minMonth       = 1
	maxMonth       = 12
	maxDayOfWeek   = 6
	splitParts     = 2

	// A full leap year of minutes bounds every satisfiable expression.
	maxIterations = 366 * 24 * 60
)

// Schedule computes the next execution time after a reference time.
type Schedule interface {
	Next(time.Time) (time.Time, error)
}

type schedule struct {
	expr    string
	minutes []int
	hours   []int
	doms    []int
	months  []int
	dows    []int
}

// Parse parses a standard 5-field cron expression:
// minute hour day-of-month month day-of-week.
// Returns ErrInvalidExpression if the expression is malformed or contains out-of-range values.
func Parse(expr string) (Schedule, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	fields := strings.Fields(expr)
	if len(fields) != cronFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidExpression, cronFieldCount, len(fields))
	}

	minutes, err := parseField(fields[0], 0, maxMinute)
	if err != nil {
		return nil, fmt.Errorf("invalid minute field: %w", err)
	}

	hours, err := parseField(fields[1], 0, maxHour)
	if err != nil {
		return nil, fmt.Errorf("invalid hour field: %w", err)
	}

	doms, err := parseField(fields[2], minDayOfMonth, maxDayOfMonth)
	if err != nil {
		return nil, fmt.Errorf("invalid day-of-month field: %w", err)
	}

	months, err := parseField(fields[3], minMonth, maxMonth)
	if err != nil {
		return nil, fmt.Errorf("invalid month field: %w", err)
	}

	dows, err := parseField(fields[4], 0, maxDayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("invalid day-of-week field: %w", err)
	}

	return &schedule{
		expr:    strings.Join(fields, " "),
		minutes: minutes,
		hours:   hours,
		doms:    doms,
		months:  months,
		dows:    dows,
	}, nil
}

// MustParse is like Parse but panics on error. Use it for expressions fixed at compile time.
//
//nolint:ireturn
func MustParse(expr string) Schedule {
	sched, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return sched
}

// Until returns how long after from the next run of sched starts.
func Until(sched Schedule, from time.Time) (time.Duration, error) {
	if sched == nil {
		return 0, ErrNilSchedule
	}

	next, err := sched.Next(from)
	if err != nil {
		return 0, err
	}

	return next.Sub(from), nil
}

// String returns the normalized expression.
func (sched *schedule) String() string {
	if sched == nil {
		return ""
	}

	return sched.expr
}

// Next returns the first whole minute strictly after from that satisfies
// every field, in from's location.
func (sched *schedule) Next(from time.Time) (time.Time, error) {
	if sched == nil {
		return time.Time{}, ErrNilSchedule
	}

	loc := from.Location()
	candidate := from.Add(time.Minute).Truncate(time.Minute)

	for i := 0; i < maxIterations; i++ {
		if !slices.Contains(sched.months, int(candidate.Month())) {
			candidate = forward(candidate, time.Date(candidate.Year(), candidate.Month()+1, 1, 0, 0, 0, 0, loc))

			continue
		}

		if !slices.Contains(sched.doms, candidate.Day()) || !slices.Contains(sched.dows, int(candidate.Weekday())) {
			candidate = forward(candidate, time.Date(candidate.Year(), candidate.Month(), candidate.Day()+1, 0, 0, 0, 0, loc))

			continue
		}

		if !slices.Contains(sched.hours, candidate.Hour()) {
			candidate = forward(candidate, time.Date(candidate.Year(), candidate.Month(), candidate.Day(), candidate.Hour()+1, 0, 0, 0, loc))

			continue
		}

		if !slices.Contains(sched.minutes, candidate.Minute()) {
			candidate = candidate.Add(time.Minute)

			continue
		}

		return candidate, nil
	}

	return time.Time{}, ErrNoMatch
}

// forward returns next when it lies after t. time.Date resolves a wall clock
// time inside a DST gap to an instant before the gap, which would stall the
// search, so in that case the candidate moves to the top of the next absolute hour.
func forward(t, next time.Time) time.Time {
	if next.After(t) {
		return next
	}

	next = t.Add(time.Hour)

	return next.Add(-time.Duration(next.Minute()) * time.Minute)
}

func parseField(field string, minVal, maxVal int) ([]int, error) {
	var result []int

	for _, part := range strings.Split(field, ",") {
		vals, err := parsePart(part, minVal, maxVal)
		if err != nil {
			return nil, err
		}

		result = append(result, vals...)
	}

	return deduplicate(result), nil
}

func parsePart(part string, minVal, maxVal int) ([]int, error) {
	var rangeStart, rangeEnd, step int

	stepParts := strings.SplitN(part, "/", splitParts)
	hasStep := len(stepParts) == splitParts

	if hasStep {
		s, err := parseStep(stepParts[1])
		if err != nil {
			return nil, err
		}

		step = s
	}

	rangePart := stepParts[0]

	switch {
	case rangePart == "*":
		rangeStart = minVal
		rangeEnd = maxVal
	case strings.Contains(rangePart, "-"):
		lo, hi, err := parseRange(rangePart, minVal, maxVal)
		if err != nil {
			return nil, err
		}

		rangeStart = lo
		rangeEnd = hi
	default:
		val, err := strconv.Atoi(rangePart)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value %q", ErrInvalidExpression, rangePart)
		}

		if val < minVal || val > maxVal {
			return nil, fmt.Errorf("%w: value %d out of bounds [%d, %d]", ErrInvalidExpression, val, minVal, maxVal)
		}

		if !hasStep {
			return []int{val}, nil
		}

		rangeStart = val
		rangeEnd = maxVal
	}

	if !hasStep {
		step = 1
	}

	var vals []int
	for v := rangeStart; v <= rangeEnd; v += step {
		vals = append(vals, v)
	}

	return vals, nil
}

func parseStep(raw string) (int, error) {
	s, err := strconv.Atoi(raw)
	if err != nil || s <= 0 {
		return 0, fmt.Errorf("%w: invalid step %q", ErrInvalidExpression, raw)
	}

	return s, nil
}

func parseRange(rangePart string, minVal, maxVal int) (int, int, error) {
	bounds := strings.SplitN(rangePart, "-", splitParts)

	lo, err := strconv.Atoi(bounds[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range start %q", ErrInvalidExpression, bounds[0])
	}

	hi, err := strconv.Atoi(bounds[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range end %q", ErrInvalidExpression, bounds[1])
	}

	if lo < minVal || hi > maxVal || lo > hi {
		return 0, 0, fmt.Errorf("%w: range %d-%d out of bounds [%d, %d]", ErrInvalidExpression, lo, hi, minVal, maxVal)
	}

	return lo, hi, nil
}

func deduplicate(vals []int) []int {
	seen := make(map[int]bool, len(vals))
	result := make([]int, 0, len(vals))

	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	slices.Sort(result)

	return result
}
