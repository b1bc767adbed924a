package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citabot/models"
)

var testCatalog = []string{"9:00 AM", "11:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"}

type fakeRepo struct {
	reserveFn   func(ctx context.Context, appt models.Appointment) error
	getByDateFn func(ctx context.Context, dateKey string) ([]models.Appointment, error)
	getAllFn    func(ctx context.Context) (map[string]models.Appointment, error)
}

func (f *fakeRepo) Reserve(ctx context.Context, appt models.Appointment) error {
	if f.reserveFn == nil {
		panic("Reserve not configured")
	}
	return f.reserveFn(ctx, appt)
}

func (f *fakeRepo) GetByDate(ctx context.Context, dateKey string) ([]models.Appointment, error) {
	if f.getByDateFn == nil {
		panic("GetByDate not configured")
	}
	return f.getByDateFn(ctx, dateKey)
}

func (f *fakeRepo) GetAll(ctx context.Context) (map[string]models.Appointment, error) {
	if f.getAllFn == nil {
		panic("GetAll not configured")
	}
	return f.getAllFn(ctx)
}

func (f *fakeRepo) EnsureIndexes() error { return nil }

func apptFor(dateKey, slot string) models.Appointment {
	return models.Appointment{
		Key:       models.ReservationKey(dateKey, slot),
		DateKey:   dateKey,
		SlotLabel: slot,
		CreatedAt: time.Now(),
	}
}

func TestFreeSlotsSubtractsTakenPreservingOrder(t *testing.T) {
	const day = "2026-09-03"
	svc := &DefaultScheduleService{
		Catalog: testCatalog,
		Repo: &fakeRepo{
			getByDateFn: func(ctx context.Context, dateKey string) ([]models.Appointment, error) {
				assert.Equal(t, day, dateKey)
				return []models.Appointment{
					apptFor(day, "11:00 AM"),
					apptFor(day, "5:00 PM"),
				}, nil
			},
		},
	}

	free, err := svc.FreeSlots(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "1:00 PM", "3:00 PM"}, free)
}

func TestFreeSlotsIgnoresOtherDays(t *testing.T) {
	const day = "2026-09-03"
	svc := &DefaultScheduleService{
		Catalog: testCatalog,
		Repo: &fakeRepo{
			getByDateFn: func(ctx context.Context, dateKey string) ([]models.Appointment, error) {
				// A sloppy store returning a neighbor day's booking must not
				// shadow this day's slots: keys are compared, not labels.
				return []models.Appointment{apptFor("2026-09-04", "9:00 AM")}, nil
			},
		},
	}

	free, err := svc.FreeSlots(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, testCatalog, free)
}

func TestFreeSlotsEmptyWhenFullyBooked(t *testing.T) {
	const day = "2026-09-03"
	svc := &DefaultScheduleService{
		Catalog: testCatalog,
		Repo: &fakeRepo{
			getByDateFn: func(ctx context.Context, dateKey string) ([]models.Appointment, error) {
				appts := make([]models.Appointment, 0, len(testCatalog))
				for _, slot := range testCatalog {
					appts = append(appts, apptFor(day, slot))
				}
				return appts, nil
			},
		},
	}

	free, err := svc.FreeSlots(context.Background(), day)
	require.NoError(t, err)
	assert.Empty(t, free, "fully booked day is a valid empty result, not an error")
}

func TestFreeSlotsIdempotentWithoutWrites(t *testing.T) {
	const day = "2026-09-03"
	svc := &DefaultScheduleService{
		Catalog: testCatalog,
		Repo: &fakeRepo{
			getByDateFn: func(ctx context.Context, dateKey string) ([]models.Appointment, error) {
				return []models.Appointment{apptFor(day, "3:00 PM")}, nil
			},
		},
	}

	first, err := svc.FreeSlots(context.Background(), day)
	require.NoError(t, err)
	second, err := svc.FreeSlots(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFreeSlotsPropagatesStoreFault(t *testing.T) {
	svc := &DefaultScheduleService{
		Catalog: testCatalog,
		Repo: &fakeRepo{
			getByDateFn: func(ctx context.Context, dateKey string) ([]models.Appointment, error) {
				return nil, errors.New("connection reset")
			},
		},
	}

	_, err := svc.FreeSlots(context.Background(), "2026-09-03")
	require.Error(t, err, "a store fault must never be read as an empty day")
}
