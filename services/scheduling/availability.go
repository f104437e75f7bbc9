// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"fmt"

	"schedly/config"
	appointmentRepo "schedly/database/repository/appointment"
	"schedly/models"
)

// Window is the business window the alternative search scans, in minutes from
// midnight. Close is exclusive: with 09:00-17:00 and a 30 minute step the
// candidate grid runs 09:00, 09:30, ..., 16:30.
type Window struct {
	OpenMin  int
	CloseMin int
	StepMin  int
}

// WindowFromConfig builds the window from AppConfig, failing loudly on
// malformed settings rather than scanning a surprise grid.
func WindowFromConfig() (Window, error) {
	open, err := models.ParseTimeOfDay(config.AppConfig.BusinessOpen)
	if err != nil {
		return Window{}, fmt.Errorf("invalid BUSINESS_OPEN: %w", err)
	}
	close, err := models.ParseTimeOfDay(config.AppConfig.BusinessClose)
	if err != nil {
		return Window{}, fmt.Errorf("invalid BUSINESS_CLOSE: %w", err)
	}
	step := config.AppConfig.SlotIntervalMin
	if step <= 0 || open.Minutes() >= close.Minutes() {
		return Window{}, fmt.Errorf("invalid business window %s-%s step %d",
			config.AppConfig.BusinessOpen, config.AppConfig.BusinessClose, step)
	}
	return Window{OpenMin: open.Minutes(), CloseMin: close.Minutes(), StepMin: step}, nil
}

// Availability is the engine's verdict for one requested slot.
type Availability struct {
	Free         bool
	Alternatives []models.Alternative
}

// AvailabilityEngine answers "is this slot free" and, on conflict, searches
// the same day for replacement slots. It never mutates the store: checking
// and booking stay two explicit steps. The engine is stateless and safe to
// share across sessions.
type AvailabilityEngine struct {
	Store           appointmentRepo.SlotStore
	Window          Window
	MaxAlternatives int
}

// Check queries the store for the exact slot. When the slot is taken it runs
// the same-day alternative search; Alternatives is populated only then.
func (e *AvailabilityEngine) Check(ctx context.Context, slot models.Slot) (Availability, error) {
	booked, err := e.Store.IsBooked(ctx, slot)
	if err != nil {
		return Availability{}, fmt.Errorf("availability check failed: %w", err)
	}
	if !booked {
		return Availability{Free: true}, nil
	}

	alts, err := e.AlternativesFor(ctx, slot.Date)
	if err != nil {
		return Availability{}, err
	}
	return Availability{Free: false, Alternatives: alts}, nil
}

// AlternativesFor scans the candidate grid for the date in chronological
// order and collects the first free slots, up to MaxAlternatives. The scan
// order fixes both the ranking and the letter labels, so identical store
// contents always produce an identical lettered set.
func (e *AvailabilityEngine) AlternativesFor(ctx context.Context, date models.Date) ([]models.Alternative, error) {
	var alts []models.Alternative
	for m := e.Window.OpenMin; m < e.Window.CloseMin && len(alts) < e.MaxAlternatives; m += e.Window.StepMin {
		tod, err := models.TimeOfDayFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("candidate grid out of range: %w", err)
		}
		candidate := models.Slot{Date: date, Time: tod}
		booked, err := e.Store.IsBooked(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("alternative search failed: %w", err)
		}
		if !booked {
			alts = append(alts, models.Alternative{
				Label: string(rune('a' + len(alts))),
				Slot:  candidate,
			})
		}
	}
	return alts, nil
}
