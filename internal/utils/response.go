package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope 统一错误响应结构，所有失败响应只有这一种形状
type ErrorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JSON 返回成功的 JSON 响应，禁止缓存
func JSON(c *gin.Context, data interface{}) {
	c.Header("Cache-Control", "no-cache")
	c.JSON(http.StatusOK, data)
}

// JPEG 返回海报图片字节
func JPEG(c *gin.Context, data []byte) {
	c.Data(http.StatusOK, "image/jpeg", data)
}

// Error 返回错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorEnvelope{Error: true, Message: message})
}
