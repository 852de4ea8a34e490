package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// NewAdminMiddleware guards the admin route group with the static token
// from admin.token. Operator identity itself is handled outside this
// service, this only keeps the mutation endpoints off the open internet.
func NewAdminMiddleware() gin.HandlerFunc {
	token := viper.GetString("admin.token")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		provided, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		c.Next()
	}
}
