package handler

import (
	"net/http"

	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetWebInfo(c *gin.Context) {
	httpx.OK(c, http.StatusOK, "Site info retrieved", h.settingsService.WebInfo())
}
