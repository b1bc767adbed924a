package models

import "time"

// Appointment is the durable record of a claimed slot. The reservation key is
// the Mongo _id, so the storage engine itself enforces that no two bookings
// share a (day, slot) pair.
type Appointment struct {
	Key         string    `bson:"_id" json:"key"`                 // "<dateKey>|<slotLabel>"
	Reference   string    `bson:"reference" json:"reference"`     // short code shown to the requester
	DateKey     string    `bson:"date_key" json:"date_key"`       // appointment date in "YYYY-MM-DD" format
	SlotLabel   string    `bson:"slot_label" json:"slot_label"`   // catalog label, e.g. "9:00 AM"
	RequesterID string    `bson:"requester_id" json:"requester_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ReservationKey builds the composite key that uniquely identifies a slot.
func ReservationKey(dateKey, slotLabel string) string {
	return dateKey + "|" + slotLabel
}
