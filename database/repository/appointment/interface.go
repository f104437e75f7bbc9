package appointmentRepo

import (
	"context"
	"errors"

	"schedly/models"
)

// ErrAlreadyBooked is returned by Book when the slot was taken between the
// caller's availability check and the commit.
var ErrAlreadyBooked = errors.New("slot already booked")

// SlotStore owns the set of booked slots. It is the only shared mutable state
// in the scheduling core; atomicity of Book is the store's responsibility.
type SlotStore interface {
	IsBooked(ctx context.Context, slot models.Slot) (bool, error)
	Book(ctx context.Context, slot models.Slot) error
	ListBooked(ctx context.Context) ([]models.Slot, error)
}
