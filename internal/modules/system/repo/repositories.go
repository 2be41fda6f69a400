package repo

import (
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
)

type SystemStore interface {
	// InitializeSystem 在同一事务中写入站点设置并创建首个管理员
	InitializeSystem(settingValues map[string]string, admin *model.User) error
	CountUsersByStatus() (map[string]int64, error)
	CountArtworksByStatus() (map[string]int64, error)
	CountReportsByStatus() (map[string]int64, error)
	CountLikes() (int64, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
