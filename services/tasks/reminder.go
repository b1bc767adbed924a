package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"citabot/models"
)

const TypeSendReminder = "reminder:send"

// Slot labels are clock times in the catalog's fixed format.
const slotTimeLayout = "2006-01-02 3:04 PM"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues a reminder task when a booking commits.
// Satisfies conversation.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
	Logger *zap.Logger
	Now    func() time.Time
}

func NewAsynqReminderScheduler(client *asynq.Client, lead time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client, Lead: lead, Logger: logger}
}

// ScheduleReminder queues a reminder at (appointment instant - lead). Slots
// too close to fire in the past are skipped silently; the booking is already
// durable either way.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment, dayLabel string) error {
	fireAt, err := s.reminderFireTime(appt)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for %s: %w", appt.Key, err)
	}
	if fireAt.IsZero() {
		s.Logger.Debug("reminder window already passed, skipping", zap.String("key", appt.Key))
		return nil
	}

	payload := models.ReminderPayload{
		RequesterID: appt.RequesterID,
		Reference:   appt.Reference,
		DateLabel:   dayLabel,
		SlotLabel:   appt.SlotLabel,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("cannot build reminder task for %s: %w", appt.Key, err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("cannot enqueue reminder for %s: %w", appt.Key, err)
	}
	return nil
}

func (s *AsynqReminderScheduler) reminderFireTime(appt models.Appointment) (time.Time, error) {
	at, err := time.ParseInLocation(slotTimeLayout, appt.DateKey+" "+appt.SlotLabel, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable slot time %q %q: %w", appt.DateKey, appt.SlotLabel, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	fireAt := at.Add(-s.Lead)
	if !fireAt.After(now()) {
		return time.Time{}, nil
	}
	return fireAt, nil
}
