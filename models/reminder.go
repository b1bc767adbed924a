package models

// ReminderPayload carries everything the reminder worker needs to notify a
// requester ahead of their appointment.
type ReminderPayload struct {
	RequesterID string `json:"requesterId"`
	Reference   string `json:"reference"`
	DateLabel   string `json:"dateLabel"`
	SlotLabel   string `json:"slotLabel"`
}
