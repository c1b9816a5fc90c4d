package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/config"
	"github.com/carelinehq/clinic-records/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextTokenJTI = "tokenJTI"
	ContextTokenExp = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, denylist token.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := token.Parse(parts[1], cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.JTI != "" && denylist.IsRevoked(c.Request.Context(), claims.JTI) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenJTI, claims.JTI)
		c.Set(ContextTokenExp, claims.Expiry)

		c.Next()
	}
}

// CallerFrom rebuilds the authenticated caller from the request context.
func CallerFrom(c *gin.Context) authz.Caller {
	userID := c.MustGet(ContextUserID).(uint)
	role, _ := authz.ParseRole(c.MustGet(ContextUserRole).(string))
	return authz.Caller{UserID: userID, Role: role}
}
