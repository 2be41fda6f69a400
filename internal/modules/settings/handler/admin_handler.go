package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings(middleware.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load settings")
		return
	}
	httpx.OK(c, http.StatusOK, "Settings retrieved", settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httpx.BadRequest(c)
		return
	}

	if err := h.settingsService.AdminUpdateSettings(middleware.CurrentActor(c), reqs); err != nil {
		httpx.WriteServiceError(c, err, "Failed to update settings")
		return
	}
	httpx.OK(c, http.StatusOK, "Settings updated successfully", gin.H{"count": len(reqs)})
}
