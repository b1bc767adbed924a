package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"citabot/models"
)

func testAppt() models.Appointment {
	return models.Appointment{
		Key:         "2026-09-03|9:00 AM",
		DateKey:     "2026-09-03",
		SlotLabel:   "9:00 AM",
		RequesterID: "u1",
	}
}

func TestReminderFireTimeLeadBeforeSlot(t *testing.T) {
	s := &AsynqReminderScheduler{
		Lead:   24 * time.Hour,
		Logger: zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
		},
	}

	fireAt, err := s.reminderFireTime(testAppt())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local), fireAt)
}

func TestReminderFireTimeSkipsPastWindow(t *testing.T) {
	s := &AsynqReminderScheduler{
		Lead:   24 * time.Hour,
		Logger: zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2026, 9, 3, 8, 0, 0, 0, time.Local)
		},
	}

	fireAt, err := s.reminderFireTime(testAppt())
	require.NoError(t, err)
	assert.True(t, fireAt.IsZero(), "reminders inside the lead window are skipped")
}

func TestReminderFireTimeRejectsUnparseableSlot(t *testing.T) {
	s := &AsynqReminderScheduler{Lead: time.Hour, Logger: zap.NewNop()}

	appt := testAppt()
	appt.SlotLabel = "early morning"
	_, err := s.reminderFireTime(appt)
	require.Error(t, err)
}

func TestNewReminderTaskPayloadRoundTrip(t *testing.T) {
	payload := models.ReminderPayload{
		RequesterID: "u1",
		Reference:   "ref-123",
		DateLabel:   "Jueves 03/09/2026",
		SlotLabel:   "9:00 AM",
	}

	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.NotEmpty(t, task.Payload())
	assert.Len(t, opts, 1)
}
