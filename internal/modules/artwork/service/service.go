package service

import (
	"errors"
	"log"

	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/artwork/repo"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	platformservice "art-atlas-server/internal/platform/service"

	"gorm.io/gorm"
)

// UserFinder 读取作品提交者资料，列表使用批量读取
type UserFinder interface {
	FindByID(userID string) (*model.User, error)
	FindByIDs(userIDs []string) ([]model.User, error)
}

// LikeCounter 统计作品点赞数
type LikeCounter interface {
	CountByArtwork(artworkID string) (int64, error)
	CountByArtworks(artworkIDs []string) (map[string]int64, error)
}

// ImageRemover 删除作品时清理已存储的图片
type ImageRemover interface {
	RemoveImages(names []string)
}

type Service struct {
	*platformservice.AppService
	artworkStore repo.ArtworkStore
	users        UserFinder
	likes        LikeCounter
	images       ImageRemover
	publisher    events.Publisher
}

func New(appService *platformservice.AppService, artworkStore repo.ArtworkStore, users UserFinder, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		AppService:   appService,
		artworkStore: artworkStore,
		users:        users,
		publisher:    publisher,
	}
}

func (s *Service) SetLikeCounter(likes LikeCounter) {
	s.likes = likes
}

func (s *Service) SetImageRemover(images ImageRemover) {
	s.images = images
}

func (s *Service) load(artworkID string) (*model.Artwork, error) {
	art, err := s.artworkStore.FindByID(artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("Artwork not found")
		}
		return nil, platformservice.NewInternalError("Failed to load artwork")
	}
	return art, nil
}

// save 写回作品并把版本冲突转换为 409
func (s *Service) save(art *model.Artwork) error {
	if err := s.artworkStore.Update(art); err != nil {
		switch {
		case errors.Is(err, repo.ErrStaleWrite):
			return platformservice.NewConflictError("Artwork was modified by another request, please retry")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return platformservice.NewNotFoundError("Artwork not found")
		default:
			log.Printf("❌ 保存作品 %s 失败: %v", art.ID, err)
			return platformservice.NewInternalError("Failed to save artwork")
		}
	}
	return nil
}

// Visible 供点赞模块校验作品存在且对 actor 可见，与 Get 的可见性一致
func (s *Service) Visible(actor moderation.Actor, artworkID string) (bool, error) {
	art, err := s.artworkStore.FindByID(artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return canView(actor, art), nil
}

// Title 返回作品标题，不存在时返回空串
func (s *Service) Title(artworkID string) string {
	art, err := s.artworkStore.FindByID(artworkID)
	if err != nil {
		return ""
	}
	return art.Title
}
