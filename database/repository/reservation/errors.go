package reservationRepo

import "errors"

// ErrSlotTaken signals that another requester already committed the same
// reservation key. Expected under contention, not a system fault.
var ErrSlotTaken = errors.New("slot already reserved")
