package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digitalocean/lead-callback/pkg/middleware"
)

// NewRouter registers all routes on a gin engine with request id, logging and recovery middleware
func NewRouter(handlers *Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger.Named("http")),
		middleware.Recovery(logger),
	)

	router.GET("/", handlers.Index)
	router.GET("/health", handlers.HealthCheck)
	router.POST("/lead-capture", handlers.HandleLeadCapture)
	router.NoRoute(handlers.NotFound)

	return router
}
