package appointmentRepo

import (
	"context"
	"sort"
	"sync"

	"schedly/models"
)

// MemoryAppointmentRepo is an in-memory SlotStore for tests and ENV=test runs.
type MemoryAppointmentRepo struct {
	mu     sync.Mutex
	booked map[models.Slot]struct{}
}

func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{booked: make(map[models.Slot]struct{})}
}

func (r *MemoryAppointmentRepo) IsBooked(ctx context.Context, slot models.Slot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.booked[slot]
	return ok, nil
}

func (r *MemoryAppointmentRepo) Book(ctx context.Context, slot models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.booked[slot]; ok {
		return ErrAlreadyBooked
	}
	r.booked[slot] = struct{}{}
	return nil
}

func (r *MemoryAppointmentRepo) ListBooked(ctx context.Context) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots := make([]models.Slot, 0, len(r.booked))
	for s := range r.booked {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Time.Minutes() < slots[j].Time.Minutes()
	})
	return slots, nil
}
