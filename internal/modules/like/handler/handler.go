package handler

import (
	"net/http"
	"strings"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/like/dto"
	likeservice "art-atlas-server/internal/modules/like/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	likeService *likeservice.Service
}

func New(likeService *likeservice.Service) *Handler {
	return &Handler{likeService: likeService}
}

// GetLikes 传 artwork_id 时返回是否已点赞，否则返回当前用户的全部点赞
func (h *Handler) GetLikes(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if artworkID, ok := c.GetQuery("artwork_id"); ok {
		liked, err := h.likeService.IsLiked(actor, artworkID)
		if err != nil {
			httpx.WriteServiceError(c, err, "Failed to load like status")
			return
		}
		httpx.OK(c, http.StatusOK, "Like status retrieved", moduledto.LikeStatus{Liked: liked})
		return
	}

	likes, err := h.likeService.ListLikes(actor)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to load likes")
		return
	}
	httpx.OK(c, http.StatusOK, "User likes retrieved", likes)
}

func (h *Handler) AddLike(c *gin.Context) {
	var req moduledto.LikeRequest
	if err := httpx.BindOptionalJSON(c, &req); err != nil {
		httpx.BadRequest(c)
		return
	}
	artworkID := req.ArtworkID
	if strings.TrimSpace(artworkID) == "" {
		artworkID = c.Query("artwork_id")
	}

	created, err := h.likeService.Like(middleware.CurrentActor(c), artworkID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to like artwork")
		return
	}
	message := "Artwork liked successfully"
	if !created {
		message = "Already liked"
	}
	httpx.OK(c, http.StatusOK, message, moduledto.LikeStatus{Liked: true})
}

func (h *Handler) RemoveLike(c *gin.Context) {
	if err := h.likeService.Unlike(middleware.CurrentActor(c), c.Query("artwork_id")); err != nil {
		httpx.WriteServiceError(c, err, "Failed to remove like")
		return
	}
	httpx.OK(c, http.StatusOK, "Like removed successfully", moduledto.LikeStatus{Liked: false})
}
