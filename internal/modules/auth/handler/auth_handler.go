package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	moduledto "art-atlas-server/internal/modules/auth/dto"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Login failed, please try again later")
		return
	}
	httpx.OK(c, http.StatusOK, "Login successful", resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Registration failed, please try again later")
		return
	}
	httpx.OK(c, http.StatusOK, "Registration successful. Account pending approval.", moduledto.RegisterResponse{User: user})
}

// Logout 令牌可来自 Authorization 头、查询参数或请求体
func (h *Handler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if token == "" {
		var req moduledto.LogoutRequest
		if err := httpx.BindOptionalJSON(c, &req); err == nil {
			token = req.SessionID
		}
	}

	if err := h.authService.Logout(token); err != nil {
		httpx.WriteServiceError(c, err, "Logout failed")
		return
	}
	httpx.OK(c, http.StatusOK, "Logout successful", nil)
}

func (h *Handler) Verify(c *gin.Context) {
	resp, err := h.authService.VerifySession(middleware.SessionToken(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Session verification failed")
		return
	}
	httpx.OK(c, http.StatusOK, "Session valid", resp)
}
