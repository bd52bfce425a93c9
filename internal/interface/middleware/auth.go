package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the Authorization bearer token and resolves its subject
// back to a stored user, so tokens for deleted accounts stop working.
// On success it sets userID and userEmail in the Gin context.
func Auth(jwt *helpers.JWTManager, users repository.UserRepository, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing auth token"})
			return
		}
		claims, err := jwt.ParseAuthToken(token)
		if err != nil {
			msg := "invalid auth token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "auth token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		u, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			// Only a missing subject invalidates the token; a store failure
			// is the server's problem, not the client's.
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid auth token"})
				return
			}
			if logger != nil {
				logger.WithError(err).Error("user lookup failed during auth")
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserEmailKey, u.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(h)
}
