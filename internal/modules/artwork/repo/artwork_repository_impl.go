package repo

import (
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) ArtworkStore {
	return &ArtworkRepository{db: db}
}

func (r *ArtworkRepository) Create(art *model.Artwork) error {
	if art.Version == 0 {
		art.Version = 1
	}
	return r.db.Create(art).Error
}

func (r *ArtworkRepository) FindByID(id string) (*model.Artwork, error) {
	var art model.Artwork
	if err := r.db.Where("id = ?", id).First(&art).Error; err != nil {
		return nil, err
	}
	return &art, nil
}

// likeEscaper 搜索词按字面匹配，转义符为 !，MySQL 字符串里的反斜杠会被吞掉
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// storageOrder 与提交顺序一致
func storageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("submitted_at asc").Order("id asc")
}

func (r *ArtworkRepository) List(filter ArtworkFilter) ([]model.Artwork, error) {
	query := r.db.Model(&model.Artwork{})

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + likeEscaper.Replace(search) + "%"
		query = query.Where("(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(artist) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!')", like, like, like)
	}
	if filter.ArtType != "" {
		query = query.Where("art_type = ?", filter.ArtType)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Period != "" {
		query = query.Where("period = ?", filter.Period)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PublicOnly {
		if filter.ViewerID != "" {
			query = query.Where("(status = ? OR submitted_by = ?)", consts.ArtworkStatusApproved, filter.ViewerID)
		} else {
			query = query.Where("status = ?", consts.ArtworkStatusApproved)
		}
	}

	var artworks []model.Artwork
	if err := storageOrder(query).Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

// ListRelated 同一作者、类型或地区的其他已发布作品
func (r *ArtworkRepository) ListRelated(art *model.Artwork, limit int) ([]model.Artwork, error) {
	var artworks []model.Artwork
	err := storageOrder(r.db.Model(&model.Artwork{})).
		Where("id <> ? AND status = ?", art.ID, consts.ArtworkStatusApproved).
		Where("(artist = ? OR art_type = ? OR region = ?)", art.Artist, art.ArtType, art.Region).
		Limit(limit).
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *ArtworkRepository) ListBySubmitter(userID string) ([]model.Artwork, error) {
	var artworks []model.Artwork
	if err := storageOrder(r.db.Where("submitted_by = ?", userID)).Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *ArtworkRepository) ListAll() ([]model.Artwork, error) {
	var artworks []model.Artwork
	if err := storageOrder(r.db).Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

// Update 以读取时的 version 为条件写回全部可变字段，成功后 version 加一。
// 条件不满足时返回 ErrStaleWrite，调用方需重新读取后再修改。
func (r *ArtworkRepository) Update(art *model.Artwork) error {
	now := time.Now()
	result := r.db.Model(&model.Artwork{}).
		Where("id = ? AND version = ?", art.ID, art.Version).
		Updates(map[string]interface{}{
			"title":            art.Title,
			"artist":           art.Artist,
			"submitted_by":     art.SubmittedBy,
			"art_type":         art.ArtType,
			"period":           art.Period,
			"region":           art.Region,
			"sensitive":        art.Sensitive,
			"address":          art.Address,
			"latitude":         art.Latitude,
			"longitude":        art.Longitude,
			"description":      art.Description,
			"images":           art.Images,
			"status":           art.Status,
			"reviewed_at":      art.ReviewedAt,
			"reviewed_by":      art.ReviewedBy,
			"rejected_at":      art.RejectedAt,
			"rejection_reason": art.RejectionReason,
			"flagged_at":       art.FlaggedAt,
			"flagged_by":       art.FlaggedBy,
			"flag_reason":      art.FlagReason,
			"updated_at":       now,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.Artwork{}).Where("id = ?", art.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrStaleWrite
	}
	art.Version++
	art.UpdatedAt = now
	return nil
}

// DeleteCascade 删除作品及其点赞，举报保留用于审计
func (r *ArtworkRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Artwork{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ArtworkRepository) Upsert(art *model.Artwork) error {
	if art.Version == 0 {
		art.Version = 1
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(art).Error
}
