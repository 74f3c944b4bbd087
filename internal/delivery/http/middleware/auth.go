package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rsaliba/exchange-service/internal/auth"
	"github.com/rsaliba/exchange-service/internal/domain"
)

const callerContextKey = "caller"

// AuthRequired validates the bearer token on every call; no session state is
// held. Auth failures map to 403, matching the original service.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		caller, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(callerContextKey, caller)
		c.Next()
	}
}

func CallerFromContext(c *gin.Context) domain.Caller {
	return c.MustGet(callerContextKey).(domain.Caller)
}
