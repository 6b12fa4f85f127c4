package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/almog-gaya/nextprop-sub005/internal/config"
	httpx "github.com/almog-gaya/nextprop-sub005/internal/http"
	"github.com/almog-gaya/nextprop-sub005/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	logger := NewLogger()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()); err != nil {
		return err
	}

	businessH := handlers.NewBusinessHandlers(c.BusinessSvc, c.VerificationSvc, logger)
	messageH := handlers.NewMessageHandlers(c.MessagingSvc, cfg.DefaultBusinessID, logger)
	conversationH := handlers.NewConversationHandlers(c.Conversations, logger)
	webhookH := handlers.NewWebhookHandlers(c.MessagingSvc, logger)

	r := httpx.BuildRouter(businessH, messageH, conversationH, webhookH, logger)

	addr := ":" + cfg.Port
	logger.Infof("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
