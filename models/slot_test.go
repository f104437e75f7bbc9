package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRejectsImpossibleDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		valid bool
	}{
		{"regular day", 2025, time.August, 15, true},
		{"february 30", 2025, time.February, 30, false},
		{"april 31", 2025, time.April, 31, false},
		{"leap day on leap year", 2024, time.February, 29, true},
		{"leap day off leap year", 2025, time.February, 29, false},
		{"day zero", 2025, time.August, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.year, tt.month, tt.day)
			if !tt.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year)
			assert.Equal(t, tt.month, d.Month)
			assert.Equal(t, tt.day, d.Day)
		})
	}
}

func TestDateRenderParseRoundTrip(t *testing.T) {
	dates := []Date{
		{Year: 2025, Month: time.August, Day: 8},
		{Year: 2025, Month: time.January, Day: 1},
		{Year: 2024, Month: time.February, Day: 29},
		{Year: 2025, Month: time.December, Day: 31},
	}
	for _, d := range dates {
		parsed, err := ParseDate(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestDateArithmetic(t *testing.T) {
	d, err := NewDate(2025, time.August, 8)
	require.NoError(t, err)

	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2025-08-09", d.AddDays(1).String())
	assert.Equal(t, "2025-09-01", d.AddDays(24).String())
	assert.Equal(t, "2025-07-31", d.AddDays(-8).String())
	assert.True(t, d.AddDays(-1).Before(d))
	assert.False(t, d.Before(d))
}

func TestTimeOfDayValidationAndRendering(t *testing.T) {
	tod, err := NewTimeOfDay(9, 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())
	assert.Equal(t, 545, tod.Minutes())

	_, err = NewTimeOfDay(24, 0)
	require.Error(t, err)
	_, err = NewTimeOfDay(10, 60)
	require.Error(t, err)
	_, err = NewTimeOfDay(-1, 0)
	require.Error(t, err)

	parsed, err := ParseTimeOfDay("13:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 30}, parsed)

	_, err = ParseTimeOfDay("25:00")
	require.Error(t, err)
}

func TestSlotEquality(t *testing.T) {
	d, _ := NewDate(2025, time.August, 8)
	a := Slot{Date: d, Time: TimeOfDay{Hour: 15}}
	b := Slot{Date: d, Time: TimeOfDay{Hour: 15}}
	c := Slot{Date: d, Time: TimeOfDay{Hour: 15, Minute: 30}}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "2025-08-08 15:00", a.String())
}
