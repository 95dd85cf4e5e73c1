package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/in"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type ScheduleController struct {
	useCase in.SuggestionUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewScheduleController(useCase in.SuggestionUseCase, cfg *config.Config, logger out.LoggerPort) *ScheduleController {
	return &ScheduleController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("ScheduleController"),
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/schedule")
	api.Use(c.basicAuth())
	{
		api.POST("/suggestions", c.createSuggestions)
	}
}

func (c *ScheduleController) createSuggestions(ctx *gin.Context) {
	var req domain.SuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.useCase.SuggestSlots(ctx.Request.Context(), &req)
	if err != nil {
		// The engine only fails on unusable input (unknown timezone)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":             req.ID,
		"slots":          result.Slots,
		"formattedSlots": result.FormattedSlots,
	})
}

func (c *ScheduleController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
