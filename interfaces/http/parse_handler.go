package http

import (
	"errors"
	"net/http"
	"strconv"

	"vidlink/domain/dto"
	"vidlink/usecase"

	"github.com/gin-gonic/gin"
)

// IParseHandler defines the video parse HTTP handlers
type IParseHandler interface {
	ParseVideo(ctx *gin.Context)
	ListHistory(ctx *gin.Context)
}

// ParseHandler implements the video parse HTTP handlers
type ParseHandler struct {
	parseUseCase usecase.IParseUseCase
}

// NewParseHandler creates a new parse handler instance
func NewParseHandler(parseUseCase usecase.IParseUseCase) IParseHandler {
	return &ParseHandler{parseUseCase: parseUseCase}
}

// ParseVideo handles POST /api/video/parse
func (h *ParseHandler) ParseVideo(ctx *gin.Context) {
	var req dto.ParseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ParseResponse{
			Success: false,
			Error:   "Invalid URL format",
		})
		return
	}

	info, fromCache, err := h.parseUseCase.Parse(ctx.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrInvalidURL) || errors.Is(err, usecase.ErrUnsupportedPlatform) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ParseResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ParseResponse{
		Success:   true,
		Data:      info,
		FromCache: fromCache,
	})
}

// ListHistory handles GET /api/history
func (h *ParseHandler) ListHistory(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "25"))

	response, err := h.parseUseCase.ListHistory(ctx.Request.Context(), page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list parse history",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}
