package router

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"spellbee/controllers"

	"github.com/gin-gonic/gin"
)

// Authorizer protects the dashboard routes with a static bearer token.
// The webhook route has its own secret and does not pass through here.
func Authorizer(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			controllers.RespondError(c, "dashboard desabilitado", http.StatusForbidden)
			c.Abort()
			return
		}

		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
