package handler

import (
	"net/http"

	"art-atlas-server/internal/middleware"
	moduledto "art-atlas-server/internal/modules/artwork/dto"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPendingArtworks(c *gin.Context) {
	artworks, err := h.artworkService.ListPending(middleware.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load artworks")
		return
	}
	httpx.OK(c, http.StatusOK, "Pending artworks retrieved", artworks)
}

func (h *Handler) ApproveArtwork(c *gin.Context) {
	var req moduledto.ReviewRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	art, err := h.artworkService.Approve(middleware.CurrentActor(c), targetArtworkID(c, req.ArtworkID))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to approve artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork approved successfully", art)
}

func (h *Handler) RejectArtwork(c *gin.Context) {
	var req moduledto.ReviewRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}

	art, err := h.artworkService.Reject(middleware.CurrentActor(c), targetArtworkID(c, req.ArtworkID), req.Reason)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to reject artwork")
		return
	}
	httpx.OK(c, http.StatusOK, "Artwork rejected", art)
}
