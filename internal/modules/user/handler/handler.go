package handler

import (
	"strings"

	userservice "art-atlas-server/internal/modules/user/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	userService *userservice.Service
}

func New(userService *userservice.Service) *Handler {
	return &Handler{userService: userService}
}

// targetUserID 路径参数优先，其次是旧接口请求体中的 user_id，最后是查询参数
func targetUserID(c *gin.Context, bodyID string) string {
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		return id
	}
	if id := strings.TrimSpace(bodyID); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Query("user_id")); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("id"))
}
