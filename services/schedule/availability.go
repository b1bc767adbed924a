package schedule

import (
	"context"
	"fmt"

	"citabot/models"
)

// FreeSlots returns the catalog slots not yet reserved for the given day,
// preserving catalog order. An empty result is valid and means the day is
// fully booked. This filter is a UX optimization only; the repository's
// atomic Reserve is what actually guarantees uniqueness.
func (s *DefaultScheduleService) FreeSlots(ctx context.Context, dateKey string) ([]string, error) {
	appts, err := s.Repo.GetByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations for %s: %w", dateKey, err)
	}

	taken := make(map[string]struct{}, len(appts))
	for _, a := range appts {
		taken[a.Key] = struct{}{}
	}

	free := make([]string, 0, len(s.Catalog))
	for _, slot := range s.Catalog {
		if _, ok := taken[models.ReservationKey(dateKey, slot)]; !ok {
			free = append(free, slot)
		}
	}
	return free, nil
}
