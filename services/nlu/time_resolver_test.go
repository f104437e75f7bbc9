package nlu

import (
	"testing"

	"schedly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeForms(t *testing.T) {
	r := NewTimeResolver()

	tests := []struct {
		expr string
		want string
	}{
		{"10:30 am", "10:30"},
		{"10:30am", "10:30"},
		{"3 pm", "15:00"},
		{"3pm", "15:00"},
		{"3:45 PM", "15:45"},
		{"11 am", "11:00"},
		{"12 pm", "12:00"}, // noon
		{"12 am", "00:00"}, // midnight
		{"12:30 am", "00:30"},
		{"14:00", "14:00"},
		{"0:15", "00:15"},
		{"23:59", "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := r.Resolve(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveTimeRejectsOutOfRange(t *testing.T) {
	r := NewTimeResolver()

	for _, expr := range []string{
		"13 pm", // normalizes to hour 25
		"25:00",
		"9:75",
		"noon",
		"half past three",
		"",
	} {
		_, err := r.Resolve(expr)
		require.ErrorIs(t, err, ErrUnparseableTime, "expr %q", expr)
	}
}

// Resolving any valid input, rendering it in 24-hour form and resolving the
// rendering again must yield the same time.
func TestResolveRenderIdempotent(t *testing.T) {
	r := NewTimeResolver()

	inputs := []string{
		"10:30 am", "3 pm", "12 am", "12 pm", "9:05 am", "11:59 pm", "14:00", "0:00",
	}
	for _, expr := range inputs {
		first, err := r.Resolve(expr)
		require.NoError(t, err)

		second, err := r.Resolve(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second, "expr %q rendered as %q", expr, first.String())
	}
}

func TestResolveTimePicksTaggedSpanOnly(t *testing.T) {
	r := NewTimeResolver()

	// Expressions arrive pre-extracted, but stray words must not break them.
	got, err := r.Resolve("at 10:30 am please")
	require.NoError(t, err)
	assert.Equal(t, models.TimeOfDay{Hour: 10, Minute: 30}, got)
}
