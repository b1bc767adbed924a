package schedule

import (
	"fmt"
	"time"

	"citabot/models"
)

// Fixed Spanish locale for display labels.
var spanishWeekdays = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// NextBusinessDays returns the next count weekdays strictly after ref, in
// chronological order. Deterministic given its inputs; the result is fully
// materialized because later stages index into it by position.
func NextBusinessDays(ref time.Time, count int) []models.AvailableDay {
	days := make([]models.AvailableDay, 0, count)
	day := ref
	for len(days) < count {
		day = day.AddDate(0, 0, 1)
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, models.AvailableDay{
			DateKey: day.Format("2006-01-02"),
			Label:   fmt.Sprintf("%s %s", spanishWeekdays[wd], day.Format("02/01/2006")),
		})
	}
	return days
}

// AvailableDays generates the day list offered at the start of a conversation.
func (s *DefaultScheduleService) AvailableDays() []models.AvailableDay {
	return NextBusinessDays(s.now(), s.DaysToOffer)
}

// SlotCatalog returns the fixed, ordered list of bookable time labels.
func (s *DefaultScheduleService) SlotCatalog() []string {
	return s.Catalog
}
