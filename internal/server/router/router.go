package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(seed *handlers.SeedProductionHandler, farmer *handlers.FarmerHandler, auth *handlers.AuthHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/auth/login", auth.Login)

		api.GET("/producao-sementes", seed.List)
		api.GET("/producao-sementes/:id", seed.Get)
		api.POST("/producao-sementes", seed.Create)
		api.PUT("/producao-sementes/:id", seed.Update)
		api.DELETE("/producao-sementes/:id", seed.Delete)

		api.GET("/agricultores", farmer.List)
		api.GET("/agricultores/:taxId", farmer.Get)
		api.POST("/agricultores", farmer.Create)
		api.PUT("/agricultores/:taxId", farmer.Update)
		api.DELETE("/agricultores/:taxId", farmer.Delete)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
