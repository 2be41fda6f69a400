package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetProfile 获取当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(middleware.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load profile")
		return
	}
	httpx.OK(c, http.StatusOK, "Profile retrieved", user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update profile")
		return
	}
	httpx.OK(c, http.StatusOK, "Profile updated successfully", user)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req moduledto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	if err := h.userService.ChangePassword(middleware.CurrentActor(c), req.OldPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "Failed to update password")
		return
	}
	httpx.OK(c, http.StatusOK, "Password updated successfully", nil)
}
