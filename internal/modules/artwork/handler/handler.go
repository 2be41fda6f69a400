package handler

import (
	"strings"

	artworkservice "art-atlas-server/internal/modules/artwork/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	artworkService *artworkservice.Service
}

func New(artworkService *artworkservice.Service) *Handler {
	return &Handler{artworkService: artworkService}
}

// targetArtworkID 路径参数优先，兼容旧接口的 artwork_id 请求体字段与 ?id= 查询参数
func targetArtworkID(c *gin.Context, bodyID string) string {
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		return id
	}
	if id := strings.TrimSpace(bodyID); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("artwork_id"))
}
