package repo

import (
	"art-atlas-server/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) InitializeSystem(settingValues map[string]string, admin *model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range settingValues {
			if err := tx.Model(&model.Setting{}).Where(&model.Setting{Key: key}).Update("value", value).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *SystemRepository) countByStatus(table interface{}) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.db.Model(table).Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *SystemRepository) CountUsersByStatus() (map[string]int64, error) {
	return r.countByStatus(&model.User{})
}

func (r *SystemRepository) CountArtworksByStatus() (map[string]int64, error) {
	return r.countByStatus(&model.Artwork{})
}

func (r *SystemRepository) CountReportsByStatus() (map[string]int64, error) {
	return r.countByStatus(&model.Report{})
}

func (r *SystemRepository) CountLikes() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
