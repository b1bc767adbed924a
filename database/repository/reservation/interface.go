// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"citabot/config"
	"citabot/database"
	"citabot/models"
)

// ReservationRepository is the durable slot-claim store. Reserve is the only
// write path and is atomic: of all concurrent calls for the same key, exactly
// one succeeds. The read methods are advisory snapshots used for display and
// filtering, never for the commit decision.
type ReservationRepository interface {
	Reserve(ctx context.Context, appt models.Appointment) error
	GetByDate(ctx context.Context, dateKey string) ([]models.Appointment, error)
	GetAll(ctx context.Context) (map[string]models.Appointment, error)
	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
