package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// emptyTwiML acknowledges an inbound message without replying
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// WebhookHandlers handles inbound provider callbacks
type WebhookHandlers struct {
	messagingSvc domain.MessagingService
	logger       *logrus.Logger
}

// NewWebhookHandlers creates new webhook handlers
func NewWebhookHandlers(messagingSvc domain.MessagingService, logger *logrus.Logger) *WebhookHandlers {
	return &WebhookHandlers{messagingSvc: messagingSvc, logger: logger}
}

// SMSInbound handles the provider's inbound-SMS form callback. The provider
// expects a TwiML body on success; any processing failure is a 500 so the
// provider redelivers.
func (h *WebhookHandlers) SMSInbound(c *gin.Context) {
	inbound := &domain.InboundMessage{
		From:        c.PostForm("From"),
		To:          c.PostForm("To"),
		Body:        c.PostForm("Body"),
		ProviderSID: c.PostForm("MessageSid"),
	}

	message, err := h.messagingSvc.Receive(c.Request.Context(), inbound)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"from":         inbound.From,
			"to":           inbound.To,
			"provider_sid": inbound.ProviderSID,
		}).Error("inbound webhook processing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process inbound message"})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"conversation_id": message.ConversationID,
		"provider_sid":    message.ProviderSID,
	}).Info("inbound message recorded")

	c.Data(http.StatusOK, "text/xml", []byte(emptyTwiML))
}
