package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go.ngs.io/sphgrid/internal/usecase"
)

// requestIDKey is the context key carrying the per-request ID.
const requestIDKey = "request_id"

// RequestID returns the ID attached to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requestID assigns each request a unique ID and echoes it in a header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// SetupRouter creates and configures the Gin router.
func SetupRouter(gridder *usecase.Gridder, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(requestID())

	// Create handler.
	handler := NewHandler(gridder)

	// API v1 routes.
	v1 := router.Group("/v1")
	grids := v1.Group("/grids")
	grids.POST("/sphinterpolate", handler.Interpolate)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
