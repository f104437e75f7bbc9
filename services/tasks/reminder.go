package tasks

import (
	"context"
	"encoding/json"
	"time"

	"schedly/config"
	"schedly/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues a reminder task due ahead of each booked
// appointment. Appointments closer than the lead time get no reminder.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
	logger *zap.Logger
}

func NewAsynqReminderScheduler(lead time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{client: client, lead: lead, logger: logger}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, slot models.Slot, conversationID string) error {
	fireAt := slot.StartsAt(time.Local).Add(-s.lead)
	if !fireAt.After(time.Now()) {
		s.logger.Debug("skipping reminder for near-term appointment",
			zap.String("slot", slot.String()))
		return nil
	}

	payload := models.ReminderPayload{
		ConversationID: conversationID,
		Date:           slot.Date.String(),
		Time:           slot.Time.String(),
		FireAt:         fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return err
	}

	s.logger.Info("reminder scheduled",
		zap.String("slot", slot.String()),
		zap.Time("fireAt", fireAt))
	return nil
}

func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
