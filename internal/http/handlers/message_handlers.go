package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// MessageHandlers handles outbound message HTTP requests
type MessageHandlers struct {
	messagingSvc      domain.MessagingService
	defaultBusinessID uint
	logger            *logrus.Logger
}

// NewMessageHandlers creates new message handlers
func NewMessageHandlers(messagingSvc domain.MessagingService, defaultBusinessID uint, logger *logrus.Logger) *MessageHandlers {
	return &MessageHandlers{
		messagingSvc:      messagingSvc,
		defaultBusinessID: defaultBusinessID,
		logger:            logger,
	}
}

// SendMessageRequest represents an outbound message request
type SendMessageRequest struct {
	To         string `json:"to" binding:"required"`
	Body       string `json:"body" binding:"required"`
	BusinessID uint   `json:"businessId,omitempty"`
}

func messageJSON(m *domain.Message) gin.H {
	return gin.H{
		"id":              m.ID,
		"conversation_id": m.ConversationID,
		"direction":       m.Direction,
		"body":            m.Body,
		"provider_sid":    m.ProviderSID,
		"status":          m.Status,
		"created_at":      m.CreatedAt,
	}
}

// Send handles sending an outbound SMS and recording it
func (h *MessageHandlers) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	businessID := req.BusinessID
	if businessID == 0 {
		businessID = h.defaultBusinessID
	}
	if businessID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "businessId is required"})
		return
	}

	message, err := h.messagingSvc.Send(c.Request.Context(), businessID, req.To, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhoneNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be in E.164 format"})
		case errors.Is(err, domain.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		default:
			abortUpstream(c, h.logger, "send message", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": messageJSON(message),
	})
}
