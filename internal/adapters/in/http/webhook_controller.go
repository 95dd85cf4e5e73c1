package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/in"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type WebhookController struct {
	intake in.MessageIntakeUseCase
	logger out.LoggerPort
}

func NewWebhookController(intake in.MessageIntakeUseCase, logger out.LoggerPort) *WebhookController {
	return &WebhookController{
		intake: intake,
		logger: logger.WithModule("WebhookController"),
	}
}

func (c *WebhookController) RegisterRoutes(router *gin.Engine) {
	router.POST("/whatsapp/webhook/message-received", c.messageReceived)
}

func (c *WebhookController) messageReceived(ctx *gin.Context) {
	var msg domain.InboundMessage
	if err := ctx.ShouldBindJSON(&msg); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.intake.HandleInbound(ctx.Request.Context(), msg); err != nil {
		// A non-2xx answer makes the gateway redeliver; dedup catches the
		// copies that did land.
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Message received",
		"status":  "success",
	})
}
