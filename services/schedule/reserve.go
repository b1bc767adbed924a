package schedule

import (
	"context"

	"github.com/google/uuid"

	"citabot/models"
)

// Reserve builds the appointment record and attempts the atomic commit.
// Returns reservationRepo.ErrSlotTaken unwrapped so callers can branch on
// the expected race outcome; any other repository error is a store fault.
func (s *DefaultScheduleService) Reserve(ctx context.Context, day models.AvailableDay, slotLabel, requesterID string) (*models.Appointment, error) {
	appt := models.Appointment{
		Key:         models.ReservationKey(day.DateKey, slotLabel),
		Reference:   uuid.New().String(),
		DateKey:     day.DateKey,
		SlotLabel:   slotLabel,
		RequesterID: requesterID,
		CreatedAt:   s.now(),
	}

	if err := s.Repo.Reserve(ctx, appt); err != nil {
		return nil, err
	}
	return &appt, nil
}
