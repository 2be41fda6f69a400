package handler

import (
	"net/http"

	moduledto "art-atlas-server/internal/modules/auth/dto"
	"art-atlas-server/internal/modules/common/httpx"
	"art-atlas-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 获取图形验证码图片
func (h *Handler) GetCaptcha(c *gin.Context) {
	id, b64s, _, err := utils.MakeCaptcha()
	if err != nil {
		httpx.Fail(c, http.StatusInternalServerError, "Failed to generate captcha")
		return
	}
	httpx.OK(c, http.StatusOK, "Captcha generated", moduledto.CaptchaResponse{
		CaptchaID:    id,
		CaptchaImage: b64s,
	})
}
