package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/internal/http/handlers"
	"github.com/almog-gaya/nextprop-sub005/internal/http/middleware"
)

func BuildRouter(bh *handlers.BusinessHandlers, mh *handlers.MessageHandlers, ch *handlers.ConversationHandlers, wh *handlers.WebhookHandlers, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	businesses := r.Group("/businesses")
	businesses.POST("", bh.Register)
	businesses.GET("", bh.List)
	businesses.GET("/:id", bh.Get)
	businesses.DELETE("/:id", bh.Deactivate)
	businesses.POST("/:id/number", bh.AssignNumber)
	businesses.POST("/:id/verify/send", bh.SendVerification)
	businesses.POST("/:id/verify/check", bh.CheckVerification)

	r.POST("/messages/send", mh.Send)

	conversations := r.Group("/conversations")
	conversations.GET("", ch.List)
	conversations.GET("/:id/messages", ch.Messages)
	conversations.POST("/:id/read", ch.MarkRead)

	r.POST("/webhooks/sms-inbound", wh.SMSInbound)

	return r
}
