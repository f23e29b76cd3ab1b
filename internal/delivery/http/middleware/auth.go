package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	user_client "localbuzz-feed-service/internal/clients/user"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

const userKey = "auth_user"

// Auth resolves the bearer token through the identity service and stores
// the resulting user on the request context. Requests without a valid
// token are rejected; this service has no anonymous surface under /api.
func Auth(users user_client.Client, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Debug("Token verification failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the authenticated user set by Auth.
func GetUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
