package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	mediaservice "art-atlas-server/internal/modules/media/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mediaService *mediaservice.Service
}

func New(mediaService *mediaservice.Service) *Handler {
	return &Handler{mediaService: mediaService}
}

// UploadArtworkImages 接收多文件字段 images（兼容 images[]）
func (h *Handler) UploadArtworkImages(c *gin.Context) {
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = append(files, form.File["images"]...)
		files = append(files, form.File["images[]"]...)
	}

	result, err := h.mediaService.UploadArtworkImages(c.Request.Context(), middleware.CurrentActor(c), files)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to upload images")
		return
	}
	httpx.OK(c, http.StatusOK, fmt.Sprintf("%d file(s) uploaded successfully", len(result.Files)), result)
}

func (h *Handler) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("profile_image")
	if err != nil {
		file = nil
	}

	image, err := h.mediaService.UploadProfileImage(c.Request.Context(), file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to save profile picture")
		return
	}
	httpx.OK(c, http.StatusOK, "Profile picture uploaded successfully", image)
}
