package nlu

import (
	"testing"
	"time"

	"schedly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-08-08 is a Friday.
func refFriday(t *testing.T) models.Date {
	t.Helper()
	d, err := models.NewDate(2025, time.August, 8)
	require.NoError(t, err)
	return d
}

func TestResolveRelativeKeywords(t *testing.T) {
	r := NewDateResolver()
	ref := refFriday(t)

	today, err := r.Resolve("today", ref)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-08", today.String())

	tomorrow, err := r.Resolve("tomorrow", ref)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-09", tomorrow.String())
}

func TestResolveWeekdays(t *testing.T) {
	r := NewDateResolver()
	ref := refFriday(t)

	tests := []struct {
		expr string
		want string
	}{
		// Bare weekday: next occurrence strictly after the reference, so the
		// reference's own weekday lands a full week out.
		{"friday", "2025-08-15"},
		{"saturday", "2025-08-09"},
		{"monday", "2025-08-11"},
		// "this" stays inside the current Monday-started week, even when the
		// day has already passed.
		{"this friday", "2025-08-08"},
		{"this monday", "2025-08-04"},
		{"this sunday", "2025-08-10"},
		// "next" always lands in the following calendar week.
		{"next friday", "2025-08-15"},
		{"next monday", "2025-08-11"},
		{"next sunday", "2025-08-17"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// For every weekday W and a spread of reference dates, "next W" must land in
// the calendar week right after the reference's week, on weekday W.
func TestNextWeekdayAlwaysInFollowingWeek(t *testing.T) {
	r := NewDateResolver()

	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	base, err := models.NewDate(2025, time.August, 4) // a Monday
	require.NoError(t, err)

	for offset := 0; offset < 7; offset++ {
		ref := base.AddDays(offset)

		for name, wd := range weekdays {
			got, err := r.Resolve("next "+name, ref)
			require.NoError(t, err)
			assert.Equal(t, wd, got.Weekday(), "next %s from %s", name, ref)

			// Following week runs base+7 .. base+13.
			diff := int(got.Time().Sub(base.Time()).Hours() / 24)
			assert.GreaterOrEqual(t, diff, 7, "next %s from %s resolved to %s", name, ref, got)
			assert.LessOrEqual(t, diff, 13, "next %s from %s resolved to %s", name, ref, got)
		}
	}
}

func TestResolveMonthDay(t *testing.T) {
	r := NewDateResolver()
	ref := refFriday(t)

	tests := []struct {
		expr    string
		want    string
		wantErr bool
	}{
		{expr: "august 15", want: "2025-08-15"},
		{expr: "august 8", want: "2025-08-08"},  // same day is not "in the past"
		{expr: "august 1", want: "2026-08-01"},  // passed, rolls to next year
		{expr: "january 2", want: "2026-01-02"}, // earlier month rolls too
		{expr: "december 31", want: "2025-12-31"},
		{expr: "february 30", wantErr: true},
		{expr: "april 31 ", wantErr: true},
		{expr: "august", wantErr: true}, // no day number
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnparseableDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveCanonicalFormRoundTrip(t *testing.T) {
	r := NewDateResolver()
	ref := refFriday(t)

	for _, d := range []models.Date{ref, ref.AddDays(90), ref.AddDays(-200)} {
		got, err := r.Resolve(d.String(), ref)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestResolveUnparseable(t *testing.T) {
	r := NewDateResolver()
	ref := refFriday(t)

	for _, expr := range []string{"", "whenever", "the 3rd", "08/15/2025"} {
		_, err := r.Resolve(expr, ref)
		require.ErrorIs(t, err, ErrUnparseableDate, "expr %q", expr)
	}
}
