package http

import (
	"net/http"

	"vidlink/usecase"

	"github.com/gin-gonic/gin"
)

// ICacheHandler defines the cache admin HTTP handlers
type ICacheHandler interface {
	GetStats(ctx *gin.Context)
	ClearAll(ctx *gin.Context)
	ClearOne(ctx *gin.Context)
}

type CacheHandler struct {
	cacheUseCase usecase.ICacheUseCase
}

func NewCacheHandler(cacheUseCase usecase.ICacheUseCase) ICacheHandler {
	return &CacheHandler{cacheUseCase: cacheUseCase}
}

// GetStats handles GET /api/cache/stats
func (h *CacheHandler) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.cacheUseCase.Stats(),
	})
}

// ClearAll handles DELETE /api/cache
func (h *CacheHandler) ClearAll(ctx *gin.Context) {
	h.cacheUseCase.ClearAll()
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearOne handles DELETE /api/cache/entry?url=...
func (h *CacheHandler) ClearOne(ctx *gin.Context) {
	url := ctx.Query("url")
	if url == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "url query parameter is required",
		})
		return
	}
	h.cacheUseCase.ClearOne(url)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
