package http

import (
	"net/http"

	"vidlink/domain/model"

	"github.com/gin-gonic/gin"
)

// IPlatformHandler defines the supported-platform HTTP handlers
type IPlatformHandler interface {
	ListPlatforms(ctx *gin.Context)
}

type PlatformHandler struct{}

func NewPlatformHandler() IPlatformHandler {
	return &PlatformHandler{}
}

// ListPlatforms handles GET /api/platforms. Platforms are returned in table
// order, which is also the detector's tie-break order.
func (h *PlatformHandler) ListPlatforms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    model.AllPlatforms(),
	})
}
