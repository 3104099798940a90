package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，code 为 0 表示成功
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: CodeSuccess, Message: "ok", Data: data})
}

// Error 错误响应，HTTP 状态码由调用方决定
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{Code: errCode, Message: msg})
}

// Fail 业务失败响应，HTTP 200 但业务码非 0
func Fail(c *gin.Context, errCode int, msg string) {
	c.JSON(http.StatusOK, Response{Code: errCode, Message: msg})
}
