//go:build unit

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      time.Time
		dayStart   time.Time
		dayEnd     time.Time
		monthStart time.Time
		monthEnd   time.Time
		yearStart  time.Time
		yearEnd    time.Time
	}{
		{
			name:       "mid june",
			input:      time.Date(2021, 6, 15, 10, 30, 45, 123, time.UTC),
			dayStart:   time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
			dayEnd:     time.Date(2021, 6, 15, 23, 59, 0, 0, time.UTC),
			monthStart: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
			monthEnd:   time.Date(2021, 6, 30, 23, 59, 0, 0, time.UTC),
			yearStart:  time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			yearEnd:    time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:       "december stays in the same year",
			input:      time.Date(2021, 12, 10, 8, 0, 0, 0, time.UTC),
			dayStart:   time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC),
			dayEnd:     time.Date(2021, 12, 10, 23, 59, 0, 0, time.UTC),
			monthStart: time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC),
			monthEnd:   time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
			yearStart:  time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			yearEnd:    time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:       "leap february",
			input:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			dayStart:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			dayEnd:     time.Date(2024, 2, 10, 23, 59, 0, 0, time.UTC),
			monthStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			monthEnd:   time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
			yearStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			yearEnd:    time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:       "common february",
			input:      time.Date(2023, 2, 28, 23, 59, 59, 999_999_999, time.UTC),
			dayStart:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
			dayEnd:     time.Date(2023, 2, 28, 23, 59, 0, 0, time.UTC),
			monthStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			monthEnd:   time.Date(2023, 2, 28, 23, 59, 0, 0, time.UTC),
			yearStart:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			yearEnd:    time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			name:       "first instant of the year",
			input:      time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			dayStart:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			dayEnd:     time.Date(2022, 1, 1, 23, 59, 0, 0, time.UTC),
			monthStart: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			monthEnd:   time.Date(2022, 1, 31, 23, 59, 0, 0, time.UTC),
			yearStart:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			yearEnd:    time.Date(2022, 12, 31, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.dayStart, DayStart(tt.input))
			assert.Equal(t, tt.dayEnd, DayEnd(tt.input))
			assert.Equal(t, tt.monthStart, MonthStart(tt.input))
			assert.Equal(t, tt.monthEnd, MonthEnd(tt.input))
			assert.Equal(t, tt.yearStart, YearStart(tt.input))
			assert.Equal(t, tt.yearEnd, YearEnd(tt.input))
		})
	}
}

func TestBoundaries_EveryMonthEndKeepsYear(t *testing.T) {
	t.Parallel()

	for month := time.January; month <= time.December; month++ {
		input := time.Date(2021, month, 15, 12, 0, 0, 0, time.UTC)
		end := MonthEnd(input)

		assert.Equal(t, 2021, end.Year(), month.String())
		assert.Equal(t, month, end.Month(), month.String())
		assert.Equal(t, month, end.AddDate(0, 0, 1).AddDate(0, -1, 0).Month(), month.String())
		assert.Equal(t, 1, end.AddDate(0, 0, 1).Day(), month.String())
	}
}

func TestBoundaries_KeepLocation(t *testing.T) {
	t.Parallel()

	newYork := mustLoadLocation(t, "America/New_York")
	input := time.Date(2026, 3, 8, 12, 0, 0, 0, newYork)

	assert.Equal(t, newYork, DayStart(input).Location())
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, newYork), DayStart(input))
	assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 0, 0, newYork), DayEnd(input))
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 0, 0, newYork), MonthEnd(input))
	assert.Equal(t, newYork, YearEnd(input).Location())
}

func TestBoundaries_DayContainsItsMinutes(t *testing.T) {
	t.Parallel()

	base := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)

	for minute := 0; minute < 24*60; minute += 7 {
		d := base.Add(time.Duration(minute) * time.Minute)

		within, err := IsWithinRange(d, DayStart(d), DayEnd(d))
		assert.NoError(t, err)
		assert.True(t, within, d.String())
	}

	assert.True(t, DayStart(base).Before(DayEnd(base)))
	assert.True(t, MonthStart(base).Before(MonthEnd(base)))
	assert.True(t, YearStart(base).Before(YearEnd(base)))
}

func TestBoundaries_SkippedMidnight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		zone     string
		input    time.Time
		startUTC time.Time
	}{
		{name: "santiago", zone: "America/Santiago", input: time.Date(2022, 9, 11, 12, 0, 0, 0, time.UTC), startUTC: time.Date(2022, 9, 11, 4, 0, 0, 0, time.UTC)},
		{name: "beirut", zone: "Asia/Beirut", input: time.Date(2022, 3, 27, 12, 0, 0, 0, time.UTC), startUTC: time.Date(2022, 3, 26, 22, 0, 0, 0, time.UTC)},
		{name: "havana", zone: "America/Havana", input: time.Date(2022, 3, 13, 12, 0, 0, 0, time.UTC), startUTC: time.Date(2022, 3, 13, 5, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc := mustLoadLocation(t, tt.zone)
			input := tt.input.In(loc)

			start := DayStart(input)
			assert.True(t, tt.startUTC.Equal(start), start.String())
			assert.Equal(t, input.Day(), start.Day())
			assert.Equal(t, 1, start.Hour())
			assert.Equal(t, loc, start.Location())
			assert.True(t, start.Equal(nextDayStart(input.AddDate(0, 0, -1))))
		})
	}
}
