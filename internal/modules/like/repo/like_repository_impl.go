package repo

import (
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeStore {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(like *model.Like) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "artwork_id"}},
		DoNothing: true,
	}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) Delete(userID, artworkID string) error {
	return r.db.Where("user_id = ? AND artwork_id = ?", userID, artworkID).Delete(&model.Like{}).Error
}

func (r *LikeRepository) Exists(userID, artworkID string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("user_id = ? AND artwork_id = ?", userID, artworkID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepository) ListByUser(userID string) ([]model.Like, error) {
	var likes []model.Like
	if err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *LikeRepository) ListAll() ([]model.Like, error) {
	var likes []model.Like
	if err := r.db.Order("created_at asc").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *LikeRepository) CountByArtwork(artworkID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("artwork_id = ?", artworkID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) CountByArtworks(artworkIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(artworkIDs))
	if len(artworkIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		ArtworkID string
		Total     int64
	}
	err := r.db.Model(&model.Like{}).
		Select("artwork_id, COUNT(*) AS total").
		Where("artwork_id IN ?", artworkIDs).
		Group("artwork_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ArtworkID] = row.Total
	}
	return counts, nil
}

func (r *LikeRepository) Upsert(like *model.Like) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(like).Error
}
