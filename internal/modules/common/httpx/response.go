package httpx

import (
	"errors"
	"io"
	"log"
	"net/http"

	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// Envelope 所有接口统一的响应结构
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK 写入成功响应
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Fail 写入失败响应
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// AbortFail 写入失败响应并中止后续处理，供中间件使用
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		if serviceErr.Code == service.ErrorCodeInternal {
			log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, serviceErr)
		}
		Fail(c, serviceErrorStatus(serviceErr.Code), serviceErr.Message)
		return
	}
	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Fail(c, http.StatusInternalServerError, fallbackMessage)
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest 请求体无法解析
func BadRequest(c *gin.Context) {
	Fail(c, http.StatusBadRequest, "Invalid request data")
}

// BindOptionalJSON 解析 JSON 请求体，空请求体视为成功
func BindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
