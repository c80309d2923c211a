package handlers

import (
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/studyforge/scoring-service/internal/utils"
)

const userIDKey = "user_id"

// IdentityMiddleware resolves an optional bearer token into a user ID via
// Casdoor. Identity is informational only: requests without a valid token
// proceed as anonymous, and attempts are recorded under the anonymous
// sentinel.
func IdentityMiddleware(client *casdoorsdk.Client, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if ok && client != nil {
			claims, err := client.ParseJwtToken(token)
			if err != nil {
				logger.Warn("could not parse bearer token, proceeding anonymously", "error", err)
			} else {
				c.Set(userIDKey, claims.Name)
			}
		}
		c.Next()
	}
}

// userIDFromContext returns the authenticated user ID, or "" for anonymous
// requests.
func userIDFromContext(c *gin.Context) string {
	if userID, exists := c.Get(userIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
