package utils

import (
	"github.com/gin-gonic/gin"
)

// Response 统一响应结构 - 所有接口都返回 message,content 仅在成功读取/列表时出现
type Response struct {
	Message string              `json:"message"`
	Content interface{}         `json:"content,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Message 只含 message 的响应
func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{Message: message})
}

// Content 带 content 的响应,content 为空切片或空字符串时仍会输出
func Content(c *gin.Context, httpStatus int, message string, content interface{}) {
	c.JSON(httpStatus, Response{Message: message, Content: content})
}

// ValidationError 字段校验失败响应
func ValidationError(c *gin.Context, httpStatus int, message string, errors map[string][]string) {
	c.AbortWithStatusJSON(httpStatus, Response{Message: message, Errors: errors})
}

// Abort 中止后续处理并返回 message
func Abort(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, Response{Message: message})
}
