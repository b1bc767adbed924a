package schedule

import (
	"context"
	"time"

	reservationRepo "citabot/database/repository/reservation"
	"citabot/models"
)

// ScheduleService computes what can be offered to a requester and commits a
// chosen slot. Availability reads are best-effort filters; Reserve is the
// race-safe commit.
type ScheduleService interface {
	AvailableDays() []models.AvailableDay
	SlotCatalog() []string
	FreeSlots(ctx context.Context, dateKey string) ([]string, error)
	Reserve(ctx context.Context, day models.AvailableDay, slotLabel, requesterID string) (*models.Appointment, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo        reservationRepo.ReservationRepository
	Catalog     []string
	DaysToOffer int
	Now         func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
