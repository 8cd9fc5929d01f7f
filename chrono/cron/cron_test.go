//go:build unit

package cron

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		from     time.Time
		expected time.Time
	}{
		{
			name:     "daily midnight rolls to the next day",
			expr:     Midnight,
			from:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight exactly waits a full day",
			expr:     Midnight,
			from:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last second of the year rolls into January",
			expr:     Midnight,
			from:     time.Date(2026, 12, 31, 23, 59, 59, 999000000, time.UTC),
			expected: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "every five minutes",
			expr:     "*/5 * * * *",
			from:     time.Date(2026, 1, 15, 10, 3, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 15, 10, 5, 0, 0, time.UTC),
		},
		{
			name:     "daily six thirty already passed",
			expr:     "30 6 * * *",
			from:     time.Date(2026, 1, 15, 7, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 16, 6, 30, 0, 0, time.UTC),
		},
		{
			name:     "hour range",
			expr:     "0 9-17 * * *",
			from:     time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "hour list",
			expr:     "0 6,12,18 * * *",
			from:     time.Date(2026, 1, 15, 7, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "fifteenth of the month",
			expr:     "0 0 15 * *",
			from:     time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "every monday",
			expr:     "0 0 * * 1",
			from:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first of the month in December rolls the year",
			expr:     "0 0 1 * *",
			from:     time.Date(2026, 12, 2, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace is ignored",
			expr:     "  0 0 * * *  ",
			from:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sched, err := Parse(tt.expr)
			require.NoError(t, err)

			next, err := sched.Next(tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
			assert.True(t, next.After(tt.from))
		})
	}
}

func TestSchedule_NextRangeWithStep(t *testing.T) {
	t.Parallel()

	sched, err := Parse("0 1-10/3 * * *")
	require.NoError(t, err)

	next, err := sched.Next(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 1, 0, 0, 0, time.UTC), next)

	next, err = sched.Next(next)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 4, 0, 0, 0, time.UTC), next)
}

func TestSchedule_NextKeepsLocation(t *testing.T) {
	t.Parallel()

	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	// 05:00 in Shanghai is still the previous day in UTC.
	from := time.Date(2026, 6, 15, 5, 0, 0, 0, shanghai)

	next, err := MustParse(Midnight).Next(from)
	require.NoError(t, err)

	assert.Equal(t, shanghai, next.Location())
	assert.True(t, time.Date(2026, 6, 16, 0, 0, 0, 0, shanghai).Equal(next))
}

func TestSchedule_NextAcrossDaylightSaving(t *testing.T) {
	t.Parallel()

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name     string
		expr     string
		from     time.Time
		expected time.Time
		until    time.Duration
	}{
		{
			name:     "spring forward day is 23 hours long",
			expr:     Midnight,
			from:     time.Date(2026, 3, 8, 1, 30, 0, 0, newYork),
			expected: time.Date(2026, 3, 9, 0, 0, 0, 0, newYork),
			until:    21*time.Hour + 30*time.Minute,
		},
		{
			name:     "fall back day is 25 hours long",
			expr:     Midnight,
			from:     time.Date(2026, 11, 1, 0, 30, 0, 0, newYork),
			expected: time.Date(2026, 11, 2, 0, 0, 0, 0, newYork),
			until:    24*time.Hour + 30*time.Minute,
		},
		{
			name:     "skipped hour moves to the next day",
			expr:     "0 2 * * *",
			from:     time.Date(2026, 3, 8, 0, 0, 0, 0, newYork),
			expected: time.Date(2026, 3, 9, 2, 0, 0, 0, newYork),
			until:    25 * time.Hour,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sched := MustParse(tt.expr)

			next, err := sched.Next(tt.from)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(next), "expected %s, got %s", tt.expected, next)

			until, err := Until(sched, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.until, until)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{name: "garbage", expr: "not-a-cron"},
		{name: "empty", expr: ""},
		{name: "too few fields", expr: "0 0 *"},
		{name: "too many fields", expr: "0 0 * * * *"},
		{name: "minute out of range", expr: "60 0 * * *"},
		{name: "zero step", expr: "*/0 * * * *"},
		{name: "inverted range", expr: "0 17-9 * * *"},
		{name: "month zero", expr: "0 0 1 0 *"},
		{name: "non numeric range", expr: "0 a-b * * *"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidExpression)
		})
	}
}

func TestMustParse_PanicsOnInvalidExpression(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("61 * * * *") })
	assert.NotPanics(t, func() { MustParse(Midnight) })
}

func TestSchedule_String(t *testing.T) {
	t.Parallel()

	sched, err := Parse("  0   0 * *  * ")
	require.NoError(t, err)

	stringer, ok := sched.(interface{ String() string })
	require.True(t, ok)
	assert.Equal(t, Midnight, stringer.String())
}

func TestUntil_NilSchedule(t *testing.T) {
	t.Parallel()

	_, err := Until(nil, time.Now())
	assert.ErrorIs(t, err, ErrNilSchedule)
}

func TestNext_NilReceiver(t *testing.T) {
	t.Parallel()

	var sched *schedule

	_, err := sched.Next(time.Now())
	assert.ErrorIs(t, err, ErrNilSchedule)
}

func TestNext_ExhaustionReturnsError(t *testing.T) {
	t.Parallel()

	// February 30th never exists.
	sched := &schedule{
		minutes: []int{0},
		hours:   []int{0},
		doms:    []int{30},
		months:  []int{2},
		dows:    []int{0, 1, 2, 3, 4, 5, 6},
	}

	next, err := sched.Next(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.True(t, next.IsZero())
}
