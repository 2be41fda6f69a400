package repo

import "art-atlas-server/internal/model"

type LikeStore interface {
	// Create 重复点赞不报错，返回是否新增了记录
	Create(like *model.Like) (bool, error)
	Delete(userID, artworkID string) error
	Exists(userID, artworkID string) (bool, error)
	ListByUser(userID string) ([]model.Like, error)
	ListAll() ([]model.Like, error)
	CountByArtwork(artworkID string) (int64, error)
	CountByArtworks(artworkIDs []string) (map[string]int64, error)
	Upsert(like *model.Like) error
}
