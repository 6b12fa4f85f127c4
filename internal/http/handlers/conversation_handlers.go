package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// ConversationHandlers handles conversation listing and read-state HTTP requests
type ConversationHandlers struct {
	store  domain.ConversationStore
	logger *logrus.Logger
}

// NewConversationHandlers creates new conversation handlers
func NewConversationHandlers(store domain.ConversationStore, logger *logrus.Logger) *ConversationHandlers {
	return &ConversationHandlers{store: store, logger: logger}
}

func conversationJSON(cv *domain.Conversation) gin.H {
	return gin.H{
		"id":                cv.ID,
		"business_id":       cv.BusinessID,
		"contact_number":    cv.ContactNumber,
		"last_message_body": cv.LastMessageBody,
		"last_message_at":   cv.LastMessageAt,
		"unread_count":      cv.UnreadCount,
	}
}

// List handles listing a business's conversations, most recent first
func (h *ConversationHandlers) List(c *gin.Context) {
	businessIDParam := c.Query("businessId")
	if businessIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "businessId query parameter is required"})
		return
	}
	businessID, err := strconv.ParseUint(businessIDParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid businessId"})
		return
	}

	conversations, err := h.store.ListByBusiness(c.Request.Context(), uint(businessID))
	if err != nil {
		abortUpstream(c, h.logger, "list conversations", err)
		return
	}

	out := make([]gin.H, 0, len(conversations))
	for _, cv := range conversations {
		out = append(out, conversationJSON(cv))
	}
	c.JSON(http.StatusOK, gin.H{"conversations": out})
}

// Messages handles listing a conversation's messages in creation order
func (h *ConversationHandlers) Messages(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	messages, err := h.store.ListMessages(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		abortUpstream(c, h.logger, "list messages", err)
		return
	}

	out := make([]gin.H, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageJSON(m))
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

// MarkRead handles resetting a conversation's unread count
func (h *ConversationHandlers) MarkRead(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	if err := h.store.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		abortUpstream(c, h.logger, "mark conversation read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ConversationHandlers) conversationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation id"})
		return 0, false
	}
	return uint(id), true
}
