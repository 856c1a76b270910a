package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/utils"
)

// ใช้ตรวจ token แล้วฝัง userId ลง context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized (no token)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		userID, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized (invalid or expired token)"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
