package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"citabot/services/conversation"
	"citabot/utils"
)

// MessageHandler exposes the inbound side of the messaging transport: the
// bridge POSTs each received text here and relays the replies back to the
// requester.
type MessageHandler struct {
	Service conversation.ConversationService
	Logger  *zap.Logger
}

func NewMessageHandler(svc conversation.ConversationService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{Service: svc, Logger: logger}
}

type inboundMessage struct {
	From string `json:"from" binding:"required"`
	Body string `json:"body" binding:"required"`
}

// HandleInbound processes one requester turn and returns the ordered replies.
func (h *MessageHandler) HandleInbound(c *gin.Context) {
	var input inboundMessage
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid message", err.Error())
		return
	}

	msgID := uuid.New().String()
	h.Logger.Debug("inbound message",
		zap.String("messageId", msgID),
		zap.String("from", input.From),
	)

	replies, err := h.Service.HandleMessage(c.Request.Context(), input.From, input.Body)
	if err != nil {
		h.Logger.Error("failed to handle inbound message",
			zap.String("messageId", msgID),
			zap.String("from", input.From),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messageId": msgID,
		"to":        input.From,
		"replies":   replies,
	})
}
