// FILE: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
// Uniqueness of the reservation key rides on _id and needs no extra index.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Primary query pattern: all reservations for a day.
		{
			Keys:    bson.D{{Key: "date_key", Value: 1}},
			Options: options.Index().SetName("date_key_idx"),
		},
		// Lookup of a requester's own bookings.
		{
			Keys:    bson.D{{Key: "requester_id", Value: 1}, {Key: "date_key", Value: 1}},
			Options: options.Index().SetName("requester_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
