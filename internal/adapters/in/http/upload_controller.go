package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendazap/slot-suggester/internal/core/ports/in"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type UploadController struct {
	useCase in.UploadUseCase
	logger  out.LoggerPort
}

func NewUploadController(useCase in.UploadUseCase, logger out.LoggerPort) *UploadController {
	return &UploadController{
		useCase: useCase,
		logger:  logger.WithModule("UploadController"),
	}
}

func (c *UploadController) RegisterRoutes(router *gin.Engine) {
	router.POST("/upload", c.uploadFile)
	router.GET("/upload/:folder/:fileName", c.getFileURL)
}

func (c *UploadController) uploadFile(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := c.useCase.Upload(
		ctx.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *UploadController) getFileURL(ctx *gin.Context) {
	url, err := c.useCase.FileURL(ctx.Request.Context(), ctx.Param("folder"), ctx.Param("fileName"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}
