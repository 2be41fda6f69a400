package handler

import (
	"net/http"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/middleware"
	moduledto "art-atlas-server/internal/modules/artwork/dto"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListArtworks 作品列表。未传 status 时只返回已发布作品，status 为空串或 all 时不过滤
func (h *Handler) ListArtworks(c *gin.Context) {
	status, present := c.GetQuery("status")
	if !present {
		status = consts.ArtworkStatusApproved
	} else if status == "" {
		status = consts.StatusFilterAll
	}

	artworks, err := h.artworkService.List(middleware.CurrentActor(c), moduledto.ListQuery{
		Search:  c.Query("search"),
		ArtType: c.Query("artType"),
		Region:  c.Query("region"),
		Period:  c.Query("period"),
		Status:  status,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load artworks")
		return
	}
	httpx.OK(c, http.StatusOK, "Artworks retrieved", artworks)
}

func (h *Handler) GetArtwork(c *gin.Context) {
	art, err := h.artworkService.Get(middleware.CurrentActor(c), targetArtworkID(c, ""))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork found", art)
}

// RelatedArtworks 详情页的相关作品
func (h *Handler) RelatedArtworks(c *gin.Context) {
	artworks, err := h.artworkService.Related(middleware.CurrentActor(c), targetArtworkID(c, ""))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load related artworks")
		return
	}
	httpx.OK(c, http.StatusOK, "Related artworks retrieved", artworks)
}

func (h *Handler) CreateArtwork(c *gin.Context) {
	var req moduledto.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	art, err := h.artworkService.Create(middleware.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to submit artwork")
		return
	}
	httpx.OK(c, http.StatusCreated, "Artwork submitted successfully. Pending admin approval.", art)
}

func (h *Handler) UpdateArtwork(c *gin.Context) {
	var req moduledto.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c)
		return
	}

	art, err := h.artworkService.Update(middleware.CurrentActor(c), targetArtworkID(c, req.ArtworkID), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork updated successfully", art)
}

func (h *Handler) DeleteArtwork(c *gin.Context) {
	if err := h.artworkService.Delete(middleware.CurrentActor(c), targetArtworkID(c, "")); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork deleted successfully", nil)
}

// FlagArtwork 标记作品需要复查
func (h *Handler) FlagArtwork(c *gin.Context) {
	var req moduledto.ReviewRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	art, err := h.artworkService.Flag(middleware.CurrentActor(c), targetArtworkID(c, req.ArtworkID), req.Reason)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to flag artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork flagged for review", art)
}

// ListMyArtworks 当前用户提交的作品，包含未发布的
func (h *Handler) ListMyArtworks(c *gin.Context) {
	artworks, err := h.artworkService.ListMine(middleware.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load artworks")
		return
	}
	httpx.OK(c, http.StatusOK, "Artworks retrieved", artworks)
}
