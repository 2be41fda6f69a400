package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetStats 后台仪表盘统计
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetStats(middleware.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load statistics")
		return
	}
	httpx.OK(c, http.StatusOK, "Statistics retrieved", stats)
}
