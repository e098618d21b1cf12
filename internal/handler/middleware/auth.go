package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"autoflow/internal/domain/actor"
	"autoflow/internal/pkg/cookie"
	"autoflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the caller from the access_token cookie or a Bearer
// header. What the caller may do is decided by the usecases.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		a, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetActor(c, a)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetActor stores the caller on the request. Tests use it in place of RequireAuth.
func SetActor(c *gin.Context, a actor.Context) {
	c.Set(ctxActorKey, a)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": a.ID().String(),
		"role":    a.Role().String(),
	})
}

func GetActor(c *gin.Context) (actor.Context, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Context{}, false
	}

	a, ok := v.(actor.Context)
	return a, ok
}
