package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// ListUsers 获取用户列表，可按 status 过滤
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.userService.AdminListUsers(middleware.CurrentActor(c), c.Query("status"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load users")
		return
	}
	httpx.OK(c, http.StatusOK, "Users retrieved", users)
}

// ApproveUser 审核通过账号
func (h *Handler) ApproveUser(c *gin.Context) {
	var req moduledto.UserIDRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	userID := targetUserID(c, req.UserID)
	user, err := h.userService.AdminApproveUser(middleware.CurrentActor(c), userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to approve user")
		return
	}
	middleware.ClearUserStatusCache(userID)
	httpx.OK(c, http.StatusOK, "User approved successfully", user)
}

// UpdateUser 修改账号信息
func (h *Handler) UpdateUser(c *gin.Context) {
	var req moduledto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	userID := targetUserID(c, req.UserID)
	user, err := h.userService.AdminUpdateUser(middleware.CurrentActor(c), userID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user")
		return
	}
	middleware.ClearUserStatusCache(userID)
	httpx.OK(c, http.StatusOK, "User updated successfully", user)
}

// SetUserStatus 设置账号状态
func (h *Handler) SetUserStatus(c *gin.Context) {
	var req moduledto.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	userID := targetUserID(c, req.UserID)
	user, err := h.userService.AdminSetUserStatus(middleware.CurrentActor(c), userID, req.Status)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update user status")
		return
	}
	middleware.ClearUserStatusCache(userID)
	httpx.OK(c, http.StatusOK, "User status updated successfully", user)
}

// DeleteUser 删除账号
func (h *Handler) DeleteUser(c *gin.Context) {
	var req moduledto.UserIDRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	userID := targetUserID(c, req.UserID)
	if err := h.userService.AdminDeleteUser(middleware.CurrentActor(c), userID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete user")
		return
	}
	middleware.ClearUserStatusCache(userID)
	httpx.OK(c, http.StatusOK, "User deleted successfully", nil)
}
