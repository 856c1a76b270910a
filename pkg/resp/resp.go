package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/logger"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": msg})
}

// ServerError ตอบ message กลาง ๆ และ log รายละเอียดไว้ฝั่ง server เท่านั้น
func ServerError(c *gin.Context, msg string, err error) {
	logger.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}
