// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"citabot/models"
)

// Reserve inserts the appointment with the reservation key as _id. Mongo's
// primary-key uniqueness is the sole enforcement point: a duplicate-key error
// means another writer won the slot, anything else is a store fault and must
// never be read as "slot free".
func (r *mongoReservationRepo) Reserve(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error reserving slot %s: %w", appt.Key, err)
	}
	return nil
}

// GetByDate retrieves all committed appointments for a given date key.
func (r *mongoReservationRepo) GetByDate(ctx context.Context, dateKey string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date_key": dateKey})
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for %s: %w", dateKey, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding reservations for %s: %w", dateKey, err)
	}
	return appts, nil
}

// GetAll returns a snapshot of every committed appointment keyed by
// reservation key. Eventually consistent with concurrent writers.
func (r *mongoReservationRepo) GetAll(ctx context.Context) (map[string]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}

	byKey := make(map[string]models.Appointment, len(appts))
	for _, a := range appts {
		byKey[a.Key] = a
	}
	return byKey, nil
}
