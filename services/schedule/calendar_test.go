package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citabot/models"
)

func TestNextBusinessDaysProperties(t *testing.T) {
	refs := []time.Time{
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2026, 9, 4, 23, 59, 0, 0, time.UTC), // Friday
		time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC),   // Sunday
		time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, ref := range refs {
		days := NextBusinessDays(ref, 5)
		require.Len(t, days, 5, "ref %s", ref)

		prevKey := ref.Format("2006-01-02")
		for _, d := range days {
			date, err := time.Parse("2006-01-02", d.DateKey)
			require.NoError(t, err)

			wd := date.Weekday()
			assert.True(t, wd >= time.Monday && wd <= time.Friday,
				"day %s falls on %s", d.DateKey, wd)
			// Date keys sort lexicographically, so this covers both
			// "strictly after the reference" and "strictly increasing".
			assert.Greater(t, d.DateKey, prevKey)
			prevKey = d.DateKey
		}
	}
}

func TestNextBusinessDaysFromSaturday(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 15, 0, 0, 0, time.UTC)

	days := NextBusinessDays(saturday, 5)
	require.Len(t, days, 5)
	assert.Equal(t, "2026-09-07", days[0].DateKey, "first offered day should be the following Monday")
	assert.Equal(t, "Lunes 07/09/2026", days[0].Label)
}

func TestNextBusinessDaysSkipsWeekend(t *testing.T) {
	// Thursday: Friday fits, then the weekend must be skipped.
	thursday := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)

	days := NextBusinessDays(thursday, 3)
	require.Len(t, days, 3)
	assert.Equal(t, []models.AvailableDay{
		{DateKey: "2026-09-04", Label: "Viernes 04/09/2026"},
		{DateKey: "2026-09-07", Label: "Lunes 07/09/2026"},
		{DateKey: "2026-09-08", Label: "Martes 08/09/2026"},
	}, days)
}

func TestSlotCatalogReturnsConfiguredOrder(t *testing.T) {
	svc := &DefaultScheduleService{Catalog: testCatalog}
	assert.Equal(t, testCatalog, svc.SlotCatalog())
}

func TestAvailableDaysUsesConfiguredCount(t *testing.T) {
	svc := &DefaultScheduleService{
		DaysToOffer: 3,
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		},
	}

	days := svc.AvailableDays()
	require.Len(t, days, 3)
	assert.Equal(t, "2026-09-02", days[0].DateKey)
}
