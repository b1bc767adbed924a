package notification

import (
	"context"

	"go.uber.org/zap"
)

// Messenger is the outbound text transport. The WhatsApp bridge (or any other
// messaging integration) implements this; the booking core never talks to a
// transport directly.
type Messenger interface {
	SendText(ctx context.Context, requesterID, body string) error
}

// LogMessenger records outbound messages instead of delivering them. Used
// when no transport bridge is configured, and in development.
type LogMessenger struct {
	Logger *zap.Logger
}

func (m *LogMessenger) SendText(ctx context.Context, requesterID, body string) error {
	m.Logger.Info("outbound message",
		zap.String("to", requesterID),
		zap.String("body", body),
	)
	return nil
}
