package models

// ConversationStage identifies where a requester is in the booking flow.
type ConversationStage string

const (
	StageAwaitingDay  ConversationStage = "awaiting_day"
	StageAwaitingSlot ConversationStage = "awaiting_slot"
)

// AvailableDay is one bookable business day offered to the requester.
// Generated fresh per conversation, never persisted.
type AvailableDay struct {
	DateKey string `json:"dateKey"` // "YYYY-MM-DD"
	Label   string `json:"label"`   // localized display string
}

// ConversationState holds the per-requester booking flow context between
// messages. Stored as a JSON blob with a TTL; absence means Idle.
type ConversationState struct {
	RequesterID  string            `json:"requesterId"`
	Stage        ConversationStage `json:"stage"`
	OfferedDays  []AvailableDay    `json:"offeredDays,omitempty"`
	ChosenDay    *AvailableDay     `json:"chosenDay,omitempty"`
	OfferedSlots []string          `json:"offeredSlots,omitempty"`
}
