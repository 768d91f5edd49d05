package api

import (
	"net/http"
	"time"

	"github.com/content-comments-api/internal/config"
	"github.com/content-comments-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	mutationLimiter := newRateLimiter(cfg.Comment.MutationRatePerMin, cfg.Comment.MutationBurst)
	router.SetTrustedProxies(nil)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Auth (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Content (public; identity attached when a credential is sent)
		v1.GET("/articles", articleHandler.ListArticles)
		v1.GET("/articles/:slug", articleHandler.GetArticle)
		v1.GET("/comments", optionalAuthMiddleware(services.Auth), commentHandler.ListComments)

		// Authenticated routes
		protected := v1.Group("")
		protected.Use(requireAuthMiddleware(services.Auth))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/logout", authHandler.Logout)

			mutations := protected.Group("")
			mutations.Use(mutationLimiter.middleware(log))
			{
				mutations.POST("/comments", commentHandler.CreateComment)
				mutations.PUT("/comments/:document_id", commentHandler.UpdateComment)
				mutations.DELETE("/comments/:document_id", commentHandler.DeleteComment)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "content-comments-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
