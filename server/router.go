package server

import (
	"net/http"
	"time"

	httpHandler "vidlink/interfaces/http"
	"vidlink/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	parseHandler httpHandler.IParseHandler,
	platformHandler httpHandler.IPlatformHandler,
	cacheHandler httpHandler.ICacheHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")

	api.POST("/video/parse", parseHandler.ParseVideo)
	api.GET("/platforms", platformHandler.ListPlatforms)

	// Admin routes require a bearer token signed with SECRET_KEY.
	admin := api.Group("")
	admin.Use(middleware.Auth())
	{
		admin.GET("/cache/stats", cacheHandler.GetStats)
		admin.DELETE("/cache", cacheHandler.ClearAll)
		admin.DELETE("/cache/entry", cacheHandler.ClearOne)
		admin.GET("/history", parseHandler.ListHistory)
	}

	return router
}
