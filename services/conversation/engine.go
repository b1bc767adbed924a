package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	reservationRepo "citabot/database/repository/reservation"
	"citabot/models"
)

// HandleMessage advances the requester's conversation by one turn and
// returns the ordered replies. Replies are also pushed through the Messenger
// so asynchronous transports receive them; an error is returned only when
// the session store itself fails.
func (s *DefaultConversationService) HandleMessage(ctx context.Context, requesterID, text string) ([]string, error) {
	state, err := s.Sessions.Get(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation state for %s: %w", requesterID, err)
	}

	var replies []string
	switch {
	case state == nil:
		replies, err = s.handleIdle(ctx, requesterID, text)
	case state.Stage == models.StageAwaitingDay:
		replies, err = s.handleDaySelection(ctx, state, text)
	case state.Stage == models.StageAwaitingSlot:
		replies, err = s.handleSlotSelection(ctx, state, text)
	default:
		// Unrecognized stage, e.g. state written by an older build. Reset.
		s.discardState(ctx, requesterID)
		replies = []string{msgIdleHint(s.greeting())}
	}
	if err != nil {
		return nil, err
	}

	s.deliver(ctx, requesterID, replies)
	return replies, nil
}

// handleIdle starts the flow when the text matches a greeting keyword.
func (s *DefaultConversationService) handleIdle(ctx context.Context, requesterID, text string) ([]string, error) {
	if !s.isGreeting(text) {
		return []string{msgIdleHint(s.greeting())}, nil
	}

	days := s.Schedule.AvailableDays()
	state := &models.ConversationState{
		RequesterID: requesterID,
		Stage:       models.StageAwaitingDay,
		OfferedDays: days,
	}
	if err := s.Sessions.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store conversation state for %s: %w", requesterID, err)
	}
	return []string{msgDayList(days)}, nil
}

// handleDaySelection parses the 1-based day choice. Invalid input re-prompts
// in place: the offered day list stays valid.
func (s *DefaultConversationService) handleDaySelection(ctx context.Context, state *models.ConversationState, text string) ([]string, error) {
	idx, ok := parseChoice(text, len(state.OfferedDays))
	if !ok {
		return []string{msgInvalidDay(len(state.OfferedDays))}, nil
	}
	day := state.OfferedDays[idx-1]

	free, err := s.Schedule.FreeSlots(ctx, day.DateKey)
	if err != nil {
		s.Logger.Error("availability read failed",
			zap.String("requesterId", state.RequesterID),
			zap.String("dateKey", day.DateKey),
			zap.Error(err),
		)
		s.discardState(ctx, state.RequesterID)
		return []string{msgStoreFailure(s.greeting())}, nil
	}
	if len(free) == 0 {
		s.discardState(ctx, state.RequesterID)
		return []string{msgNoAvailability(day, s.greeting())}, nil
	}

	state.Stage = models.StageAwaitingSlot
	state.ChosenDay = &day
	state.OfferedSlots = free
	if err := s.Sessions.Put(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store conversation state for %s: %w", state.RequesterID, err)
	}
	return []string{msgSlotList(day, free)}, nil
}

// handleSlotSelection attempts the atomic commit. Stricter than stage one:
// any invalid input forces a restart so the next attempt re-reads
// availability.
func (s *DefaultConversationService) handleSlotSelection(ctx context.Context, state *models.ConversationState, text string) ([]string, error) {
	if state.ChosenDay == nil {
		// Malformed session blob, e.g. written by an older build. Reset.
		s.discardState(ctx, state.RequesterID)
		return []string{msgIdleHint(s.greeting())}, nil
	}

	idx, ok := parseChoice(text, len(state.OfferedSlots))
	if !ok {
		s.discardState(ctx, state.RequesterID)
		return []string{msgInvalidSlot(s.greeting())}, nil
	}
	slot := state.OfferedSlots[idx-1]

	appt, err := s.Schedule.Reserve(ctx, *state.ChosenDay, slot, state.RequesterID)
	switch {
	case errors.Is(err, reservationRepo.ErrSlotTaken):
		s.Logger.Info("slot lost to concurrent booking",
			zap.String("requesterId", state.RequesterID),
			zap.String("key", models.ReservationKey(state.ChosenDay.DateKey, slot)),
		)
		s.discardState(ctx, state.RequesterID)
		return []string{msgSlotTaken(s.greeting())}, nil
	case err != nil:
		s.Logger.Error("reservation commit failed",
			zap.String("requesterId", state.RequesterID),
			zap.String("key", models.ReservationKey(state.ChosenDay.DateKey, slot)),
			zap.Error(err),
		)
		s.discardState(ctx, state.RequesterID)
		return []string{msgStoreFailure(s.greeting())}, nil
	}

	if s.Reminders != nil {
		if remErr := s.Reminders.ScheduleReminder(ctx, *appt, state.ChosenDay.Label); remErr != nil {
			s.Logger.Warn("failed to schedule reminder",
				zap.String("key", appt.Key),
				zap.Error(remErr),
			)
		}
	}

	dayLabel := state.ChosenDay.Label
	s.discardState(ctx, state.RequesterID)
	return []string{msgConfirmation(appt, dayLabel)}, nil
}

func (s *DefaultConversationService) isGreeting(text string) bool {
	candidate := strings.TrimSpace(text)
	if !s.CaseSensitive {
		candidate = strings.ToLower(candidate)
	}
	for _, g := range s.Greetings {
		if !s.CaseSensitive {
			g = strings.ToLower(g)
		}
		if candidate == g {
			return true
		}
	}
	return false
}

// greeting returns the keyword quoted in templates.
func (s *DefaultConversationService) greeting() string {
	if len(s.Greetings) > 0 {
		return s.Greetings[0]
	}
	return "hola"
}

func (s *DefaultConversationService) discardState(ctx context.Context, requesterID string) {
	if err := s.Sessions.Delete(ctx, requesterID); err != nil {
		s.Logger.Warn("failed to discard conversation state",
			zap.String("requesterId", requesterID),
			zap.Error(err),
		)
	}
}

func (s *DefaultConversationService) deliver(ctx context.Context, requesterID string, replies []string) {
	for _, body := range replies {
		if err := s.Messenger.SendText(ctx, requesterID, body); err != nil {
			s.Logger.Warn("failed to deliver outbound message",
				zap.String("requesterId", requesterID),
				zap.Error(err),
			)
		}
	}
}

// parseChoice parses a 1-based selection and checks it against the number of
// offered options.
func parseChoice(text string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}
