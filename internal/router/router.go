package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/api"
	"github.com/nutritrack/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	profileHandler *api.ProfileHandler,
	goalHandler *api.GoalHandler,
	logHandler *api.LogHandler,
	scanHandler *api.ScanHandler,
	scanLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS for the local frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	profileHandler.RegisterRoutes(v1)
	goalHandler.RegisterRoutes(v1)
	logHandler.RegisterRoutes(v1)

	// Scans call a paid vision API, so they carry their own limiter
	scan := v1.Group("")
	if scanLimiter != nil {
		scan.Use(scanLimiter.RateLimitMiddleware())
	}
	scanHandler.RegisterRoutes(scan)

	return router
}
