package handler

import (
	"net/http"
	"strings"

	"campusvoice/internal/app/reviews/entity"

	"github.com/gin-gonic/gin"
)

const credentialKey = "credential"

// RequireBearer extracts the bearer credential from the Authorization header
// and stores it in the request context. It does not authorize: the services
// own that decision, so a bad credential is rejected before any store access.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Invalid authorization header format"})
			return
		}

		c.Set(credentialKey, parts[1])
		c.Next()
	}
}

func credentialFromContext(c *gin.Context) string {
	return c.GetString(credentialKey)
}
