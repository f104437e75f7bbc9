// File: services/scheduling/negotiation.go
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "schedly/database/repository/appointment"
	"schedly/models"
	"schedly/services/nlu"

	"go.uber.org/zap"
)

// NegotiationService resolves one conversational turn. Each call is a pure
// transition on the stored session: (session, input) -> (session', result).
// Callers must serialize turns per conversation; across conversations the
// service is safe for concurrent use.
type NegotiationService interface {
	ResolveTurn(ctx context.Context, conversationID, utterance string, now time.Time) (*models.Resolution, error)
	Reset(ctx context.Context, conversationID string) error
}

// ReminderScheduler schedules a post-booking reminder. Implementations must
// treat failures as non-fatal; a booking never rolls back over a reminder.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, slot models.Slot, conversationID string) error
}

// DefaultNegotiationService implements NegotiationService.
type DefaultNegotiationService struct {
	Extractor *nlu.Extractor
	Dates     *nlu.DateResolver
	Times     *nlu.TimeResolver
	Engine    *AvailabilityEngine
	Store     appointmentRepo.SlotStore
	Sessions  SessionStore
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger
}

func (s *DefaultNegotiationService) ResolveTurn(ctx context.Context, conversationID, utterance string, now time.Time) (*models.Resolution, error) {
	session, err := s.Sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load negotiation session: %w", err)
	}

	if session.State == models.StateAwaitingSelection {
		return s.handleSelection(ctx, session, utterance)
	}
	return s.handleRequest(ctx, session, utterance, now)
}

// Reset discards any pending selection so the next utterance is treated as a
// fresh natural-language request.
func (s *DefaultNegotiationService) Reset(ctx context.Context, conversationID string) error {
	return s.Sessions.Clear(ctx, conversationID)
}

// handleRequest routes an utterance through extraction, resolution and the
// availability engine. Parse failures come back as typed results, never as
// errors: a bad utterance must not end the session.
func (s *DefaultNegotiationService) handleRequest(ctx context.Context, session *models.NegotiationSession, utterance string, now time.Time) (*models.Resolution, error) {
	extracted := s.Extractor.Extract(ctx, utterance, now)

	date, err := s.Dates.Resolve(extracted.DateExpr, models.DateOf(now))
	if err != nil {
		if !errors.Is(err, nlu.ErrUnparseableDate) {
			return nil, err
		}
		return &models.Resolution{
			Status:    models.StatusParseError,
			ErrorKind: models.ParseErrorDate,
			Message:   `I couldn't understand that date. Try something like "tomorrow", "next monday" or "august 15".`,
		}, nil
	}

	if extracted.TimeExpr == "" {
		return &models.Resolution{
			Status:    models.StatusParseError,
			ErrorKind: models.ParseErrorMissingTime,
			Message:   fmt.Sprintf(`Got it, %s. What time would you like? Try something like "3 pm" or "14:30".`, date),
		}, nil
	}

	tod, err := s.Times.Resolve(extracted.TimeExpr)
	if err != nil {
		if !errors.Is(err, nlu.ErrUnparseableTime) {
			return nil, err
		}
		return &models.Resolution{
			Status:    models.StatusParseError,
			ErrorKind: models.ParseErrorTime,
			Message:   `I couldn't understand that time. Try something like "3 pm", "10:30 am" or "14:00".`,
		}, nil
	}

	slot := models.Slot{Date: date, Time: tod}
	avail, err := s.Engine.Check(ctx, slot)
	if err != nil {
		return nil, err
	}
	if !avail.Free {
		return s.negotiate(ctx, session, slot, avail.Alternatives)
	}
	return s.book(ctx, session, slot)
}

// handleSelection interprets the turn as a single-letter pick. Anything that
// is not a valid letter is rejected outright rather than reinterpreted as a
// new request, so ambiguous follow-up text cannot cause a surprise booking.
func (s *DefaultNegotiationService) handleSelection(ctx context.Context, session *models.NegotiationSession, utterance string) (*models.Resolution, error) {
	input := strings.ToLower(strings.TrimSpace(utterance))

	if len(input) != 1 || input[0] < 'a' || input[0] > 'z' {
		return s.invalidSelection(ctx, session)
	}
	slot, ok := session.FindAlternative(input)
	if !ok {
		return s.invalidSelection(ctx, session)
	}
	return s.book(ctx, session, slot)
}

func (s *DefaultNegotiationService) invalidSelection(ctx context.Context, session *models.NegotiationSession) (*models.Resolution, error) {
	// Refresh the TTL; the pending alternatives stay live for a reprompt.
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save negotiation session: %w", err)
	}
	last := session.Alternatives[len(session.Alternatives)-1].Label
	return &models.Resolution{
		Status:       models.StatusInvalidSelection,
		Alternatives: session.Alternatives,
		Message:      fmt.Sprintf("Please reply with a single letter between a and %s to pick a slot.", last),
	}, nil
}

// book commits the slot, tolerating one lost race: if the store reports the
// slot taken, availability is re-checked and the booking retried once before
// the conflict is surfaced with fresh alternatives.
func (s *DefaultNegotiationService) book(ctx context.Context, session *models.NegotiationSession, slot models.Slot) (*models.Resolution, error) {
	for attempt := 0; attempt < 2; attempt++ {
		err := s.Store.Book(ctx, slot)
		if err == nil {
			return s.booked(ctx, session, slot)
		}
		if !errors.Is(err, appointmentRepo.ErrAlreadyBooked) {
			return nil, fmt.Errorf("failed to book slot: %w", err)
		}

		s.Logger.Info("booking raced with a concurrent reservation",
			zap.String("conversationId", session.ConversationID),
			zap.String("slot", slot.String()),
			zap.Int("attempt", attempt+1))

		avail, cerr := s.Engine.Check(ctx, slot)
		if cerr != nil {
			return nil, cerr
		}
		if !avail.Free {
			return s.negotiate(ctx, session, slot, avail.Alternatives)
		}
		// The store claims the slot is free again; retry once.
	}

	// Two conflicts in a row: stop retrying and renegotiate.
	alts, err := s.Engine.AlternativesFor(ctx, slot.Date)
	if err != nil {
		return nil, err
	}
	return s.negotiate(ctx, session, slot, alts)
}

func (s *DefaultNegotiationService) booked(ctx context.Context, session *models.NegotiationSession, slot models.Slot) (*models.Resolution, error) {
	if err := s.Sessions.Clear(ctx, session.ConversationID); err != nil {
		s.Logger.Warn("failed to clear negotiation session",
			zap.String("conversationId", session.ConversationID), zap.Error(err))
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, slot, session.ConversationID); err != nil {
			s.Logger.Warn("failed to schedule reminder",
				zap.String("slot", slot.String()), zap.Error(err))
		}
	}
	s.Logger.Info("appointment booked",
		zap.String("conversationId", session.ConversationID),
		zap.String("slot", slot.String()))

	return &models.Resolution{
		Status:  models.StatusBooked,
		Slot:    &slot,
		Message: fmt.Sprintf("Your appointment on %s at %s is booked.", slot.Date, slot.Time),
	}, nil
}

// negotiate records the conflict in the session and presents alternatives,
// or reports that the day is fully booked.
func (s *DefaultNegotiationService) negotiate(ctx context.Context, session *models.NegotiationSession, requested models.Slot, alts []models.Alternative) (*models.Resolution, error) {
	if len(alts) == 0 {
		if err := s.Sessions.Clear(ctx, session.ConversationID); err != nil {
			return nil, fmt.Errorf("failed to clear negotiation session: %w", err)
		}
		return &models.Resolution{
			Status: models.StatusNoAlternatives,
			Message: fmt.Sprintf("%s at %s is not available and no other slots are free that day. Please try another date.",
				requested.Date, requested.Time),
		}, nil
	}

	session.State = models.StateAwaitingSelection
	session.Requested = &requested
	session.Alternatives = alts
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save negotiation session: %w", err)
	}

	rendered := make([]string, len(alts))
	for i, alt := range alts {
		rendered[i] = alt.Render()
	}
	return &models.Resolution{
		Status:       models.StatusNeedsSelection,
		Alternatives: alts,
		Message: fmt.Sprintf("%s at %s is not available. Reply with a letter to pick an alternative: %s",
			requested.Date, requested.Time, strings.Join(rendered, ", ")),
	}, nil
}
