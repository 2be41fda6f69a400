package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules/common/httpx"
	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// isUploadPath 上传接口由 UploadBodyLimitMiddleware 单独限制
func isUploadPath(path string) bool {
	return strings.Contains(path, "/uploads/") ||
		strings.HasSuffix(path, "/upload.php") ||
		strings.HasSuffix(path, "/upload-profile.php")
}

// BodyLimitMiddleware 限制请求体大小
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isUploadPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		maxSizeMB := appService.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxSizeMB)*1024*1024)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小，sizeKey 为单文件大小设置，
// maxFiles 为一次请求允许的文件数。
func UploadBodyLimitMiddleware(appService *service.AppService, sizeKey string, defaultMB int, maxFiles int) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.GetInt(sizeKey)
		if maxSizeMB <= 0 {
			maxSizeMB = defaultMB
		}
		if maxFiles < 1 {
			maxFiles = 1
		}
		// 预留 1MB 给 multipart 边界与表单字段
		maxBytes := int64(maxSizeMB*maxFiles+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes {
			httpx.AbortFail(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %dMB per file", maxSizeMB))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
