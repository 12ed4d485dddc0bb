package middleware

import (
	"net/http"
	"strings"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/util/tokenutil"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyAdministratorID = "x-administrator-id"
	ContextKeyUsername        = "x-username"
)

// JwtAuthMiddleware rejects requests without a valid Bearer access token and
// stores the administrator's id and username in the gin context.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			controller.MessageResponse(c, http.StatusUnauthorized, "Authorization header missing.")
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			controller.MessageResponse(c, http.StatusUnauthorized, "Bearer token malformed.")
			c.Abort()
			return
		}

		claims, err := tokenutil.ParseAccessToken(strings.TrimSpace(tokenString), secret)
		if err != nil {
			controller.MessageResponse(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdministratorID, claims.ID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}
