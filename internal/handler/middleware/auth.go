package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotbook/internal/pkg/cookie"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOrganizerIDKey = "organizer_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		organizerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOrganizerIDKey, organizerID)
		c.Set("jwt_claims", map[string]any{
			"organizer_id": organizerID.String(),
		})
		c.Next()
	}
}

// extractToken checks the auth cookie first, then the Authorization header,
// so browser clients and API clients both work.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetOrganizerID(c *gin.Context) (uuid.UUID, bool) {
	organizerID, exists := c.Get(ctxOrganizerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := organizerID.(uuid.UUID)
	return id, ok
}
