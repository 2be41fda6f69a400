package events

import (
	"log"
	"net/http"

	"art-atlas-server/internal/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeFeed 管理员实时审核事件流，路由层负责鉴权
func (h *Handler) ServeFeed(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request, allowedOrigin); err != nil {
		log.Printf("⚠️ websocket 升级失败: %v", err)
	}
}

func allowedOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range config.Get().CORS.AllowOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
