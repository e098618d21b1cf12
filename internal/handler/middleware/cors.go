package middleware

import (
	"log/slog"
	"slices"

	"autoflow/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy. An origin list containing "*"
// opens the API to any origin, which drops credentialed requests.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: cfg.ExposeHeaders,
		MaxAge:        cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		policy.AllowAllOrigins = true
	} else {
		policy.AllowOrigins = cfg.AllowOrigins
		policy.AllowCredentials = cfg.AllowCredentials
	}
	slog.Info("CORS policy loaded", "origins", cfg.AllowOrigins, "credentials", policy.AllowCredentials)
	return cors.New(policy)
}
