package service

import (
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/like/repo"
	"art-atlas-server/internal/modules/moderation"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"
)

// ArtworkChecker 点赞前确认作品存在且对当前用户可见
type ArtworkChecker interface {
	Visible(actor moderation.Actor, artworkID string) (bool, error)
}

type Service struct {
	likeStore repo.LikeStore
	artworks  ArtworkChecker
}

func New(likeStore repo.LikeStore, artworks ArtworkChecker) *Service {
	return &Service{likeStore: likeStore, artworks: artworks}
}

func requireArtworkID(artworkID string) (string, error) {
	artworkID = strings.TrimSpace(artworkID)
	if artworkID == "" {
		return "", platformservice.NewValidationError("Artwork ID required")
	}
	return artworkID, nil
}

// Like 点赞，重复点赞视为成功。返回是否新增
func (s *Service) Like(actor moderation.Actor, artworkID string) (bool, error) {
	if err := moderation.Allow(moderation.ActionLikeArtwork, actor, ""); err != nil {
		return false, err
	}
	artworkID, err := requireArtworkID(artworkID)
	if err != nil {
		return false, err
	}
	if s.artworks != nil {
		visible, err := s.artworks.Visible(actor, artworkID)
		if err != nil {
			return false, platformservice.NewInternalError("Failed to load artwork")
		}
		// 不可见的作品与不存在返回相同结果
		if !visible {
			return false, platformservice.NewNotFoundError("Artwork not found")
		}
	}

	created, err := s.likeStore.Create(&model.Like{
		ID:        utils.NewID(consts.LikeIDPrefix),
		UserID:    actor.ID,
		ArtworkID: artworkID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return false, platformservice.NewInternalError("Failed to like artwork")
	}
	return created, nil
}

// Unlike 取消点赞，未点赞时同样成功
func (s *Service) Unlike(actor moderation.Actor, artworkID string) error {
	if err := moderation.Allow(moderation.ActionLikeArtwork, actor, ""); err != nil {
		return err
	}
	artworkID, err := requireArtworkID(artworkID)
	if err != nil {
		return err
	}
	if err := s.likeStore.Delete(actor.ID, artworkID); err != nil {
		return platformservice.NewInternalError("Failed to remove like")
	}
	return nil
}

func (s *Service) IsLiked(actor moderation.Actor, artworkID string) (bool, error) {
	if err := moderation.Allow(moderation.ActionLikeArtwork, actor, ""); err != nil {
		return false, err
	}
	liked, err := s.likeStore.Exists(actor.ID, strings.TrimSpace(artworkID))
	if err != nil {
		return false, platformservice.NewInternalError("Failed to load like status")
	}
	return liked, nil
}

// ListLikes 当前用户的点赞记录
func (s *Service) ListLikes(actor moderation.Actor) ([]model.Like, error) {
	if err := moderation.Allow(moderation.ActionLikeArtwork, actor, ""); err != nil {
		return nil, err
	}
	likes, err := s.likeStore.ListByUser(actor.ID)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load likes")
	}
	return likes, nil
}

func (s *Service) CountByArtwork(artworkID string) (int64, error) {
	return s.likeStore.CountByArtwork(artworkID)
}

func (s *Service) CountByArtworks(artworkIDs []string) (map[string]int64, error) {
	return s.likeStore.CountByArtworks(artworkIDs)
}
