package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/DarshanR43/satchi/internal/config"
	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

// AdminAuth guards event administration and judging routes with the
// configured bearer token.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	expected := []byte(cfg.Root.AdminBearerToken)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(raw), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		c.Next()
	}
}
