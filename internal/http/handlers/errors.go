package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// abortUpstream maps provider errors to client-facing statuses and hides
// everything else behind a generic 500. Full detail goes to the server log,
// never to the client.
func abortUpstream(c *gin.Context, logger *logrus.Logger, op string, err error) {
	if pe, ok := domain.AsProviderError(err); ok {
		logger.WithError(err).WithField("provider_code", pe.Code).Errorf("%s: provider failure", op)
		switch {
		case pe.IsInvalidDestination():
			c.JSON(http.StatusBadRequest, gin.H{"error": "Destination number was rejected by the carrier"})
		case pe.IsTrialRestriction():
			c.JSON(http.StatusForbidden, gin.H{"error": "Destination number is unverified for this trial account"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream provider error"})
		}
		return
	}

	logger.WithError(err).Errorf("%s failed", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
