package scheduling

import (
	"context"
	"testing"
	"time"

	appointmentRepo "schedly/database/repository/appointment"
	"schedly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() Window {
	return Window{OpenMin: 9 * 60, CloseMin: 17 * 60, StepMin: 30}
}

func mustDate(t *testing.T, y int, m time.Month, d int) models.Date {
	t.Helper()
	date, err := models.NewDate(y, m, d)
	require.NoError(t, err)
	return date
}

func mustBook(t *testing.T, store appointmentRepo.SlotStore, date models.Date, hhmm string) {
	t.Helper()
	tod, err := models.ParseTimeOfDay(hhmm)
	require.NoError(t, err)
	require.NoError(t, store.Book(context.Background(), models.Slot{Date: date, Time: tod}))
}

func TestCheckReportsFreeSlot(t *testing.T) {
	store := appointmentRepo.NewMemoryAppointmentRepo()
	engine := &AvailabilityEngine{Store: store, Window: testWindow(), MaxAlternatives: 2}
	date := mustDate(t, 2025, time.August, 8)

	avail, err := engine.Check(context.Background(), models.Slot{Date: date, Time: models.TimeOfDay{Hour: 15}})
	require.NoError(t, err)
	assert.True(t, avail.Free)
	assert.Empty(t, avail.Alternatives)
}

func TestCheckOffersChronologicalAlternatives(t *testing.T) {
	store := appointmentRepo.NewMemoryAppointmentRepo()
	engine := &AvailabilityEngine{Store: store, Window: testWindow(), MaxAlternatives: 2}
	date := mustDate(t, 2025, time.August, 8)

	// Fill the morning so the first free grid slots are 13:00 and 14:00.
	for _, hhmm := range []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
		"13:30", "15:00",
	} {
		mustBook(t, store, date, hhmm)
	}

	avail, err := engine.Check(context.Background(), models.Slot{Date: date, Time: models.TimeOfDay{Hour: 15}})
	require.NoError(t, err)
	require.False(t, avail.Free)
	require.Len(t, avail.Alternatives, 2)

	assert.Equal(t, "a", avail.Alternatives[0].Label)
	assert.Equal(t, "13:00", avail.Alternatives[0].Slot.Time.String())
	assert.Equal(t, "b", avail.Alternatives[1].Label)
	assert.Equal(t, "14:00", avail.Alternatives[1].Slot.Time.String())

	assert.Equal(t, "a) 13:00", avail.Alternatives[0].Render())
}

func TestAlternativeSearchIsDeterministic(t *testing.T) {
	store := appointmentRepo.NewMemoryAppointmentRepo()
	engine := &AvailabilityEngine{Store: store, Window: testWindow(), MaxAlternatives: 3}
	date := mustDate(t, 2025, time.August, 8)

	for _, hhmm := range []string{"09:00", "10:00", "11:00", "15:00"} {
		mustBook(t, store, date, hhmm)
	}

	first, err := engine.AlternativesFor(context.Background(), date)
	require.NoError(t, err)
	second, err := engine.AlternativesFor(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "09:30", first[0].Slot.Time.String())
}

func TestAlternativeSearchReturnsFewerWhenDayIsNearlyFull(t *testing.T) {
	store := appointmentRepo.NewMemoryAppointmentRepo()
	engine := &AvailabilityEngine{Store: store, Window: Window{OpenMin: 9 * 60, CloseMin: 10 * 60, StepMin: 30}, MaxAlternatives: 2}
	date := mustDate(t, 2025, time.August, 8)

	// Only 09:00 and 09:30 exist in this tiny window; book one of them.
	mustBook(t, store, date, "09:00")

	alts, err := engine.AlternativesFor(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "a", alts[0].Label)
	assert.Equal(t, "09:30", alts[0].Slot.Time.String())

	// Book the rest: no alternatives remain.
	mustBook(t, store, date, "09:30")
	alts, err = engine.AlternativesFor(context.Background(), date)
	require.NoError(t, err)
	assert.Empty(t, alts)
}

func TestAlternativeSearchStaysOnRequestedDate(t *testing.T) {
	store := appointmentRepo.NewMemoryAppointmentRepo()
	engine := &AvailabilityEngine{Store: store, Window: testWindow(), MaxAlternatives: 2}
	date := mustDate(t, 2025, time.August, 8)
	nextDay := date.AddDays(1)

	mustBook(t, store, date, "09:00")

	alts, err := engine.AlternativesFor(context.Background(), nextDay)
	require.NoError(t, err)
	require.NotEmpty(t, alts)
	for _, alt := range alts {
		assert.Equal(t, nextDay, alt.Slot.Date)
	}
	assert.Equal(t, "09:00", alts[0].Slot.Time.String())
}
