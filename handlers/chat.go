package handlers

import (
	"net/http"
	"strings"

	"regenmed/models"
	"regenmed/services/chat"
	"regenmed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler relays one chat turn to the model.
type ChatHandler struct {
	Relay chat.Relay
}

func NewChatHandler(relay chat.Relay) *ChatHandler {
	return &ChatHandler{Relay: relay}
}

// ChatMessageHandler validates the message, forwards it with the supplied
// history, and returns the reply. Chat works with or without Google
// authorization; only scheduling needs the credential.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
		return
	}

	reply, err := h.Relay.Reply(c.Request.Context(), req.History, req.Message)
	if err != nil {
		logger.Error("Error processing chat message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response from AI."})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
