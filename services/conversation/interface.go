package conversation

import (
	"context"

	"go.uber.org/zap"

	"citabot/models"
	"citabot/services/notification"
	"citabot/services/schedule"
)

// ConversationService drives the three-stage booking dialogue. One call per
// inbound requester message; the returned strings are the ordered replies.
type ConversationService interface {
	HandleMessage(ctx context.Context, requesterID, text string) ([]string, error)
}

// SessionStore keeps per-requester conversation state between messages.
// Get returns (nil, nil) when the requester has no active conversation.
type SessionStore interface {
	Get(ctx context.Context, requesterID string) (*models.ConversationState, error)
	Put(ctx context.Context, state *models.ConversationState) error
	Delete(ctx context.Context, requesterID string) error
}

// ReminderScheduler queues a pre-appointment reminder once a booking commits.
// Best effort: failures must never undo or fail the booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment, dayLabel string) error
}

// DefaultConversationService implements ConversationService.
type DefaultConversationService struct {
	Schedule  schedule.ScheduleService
	Sessions  SessionStore
	Messenger notification.Messenger
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger

	Greetings     []string
	CaseSensitive bool
}
