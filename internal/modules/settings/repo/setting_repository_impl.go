package repo

import (
	"fmt"

	"art-atlas-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

// byKey 使用结构体条件，key 在 MySQL 中是保留字，交给 gorm 负责转义。
func byKey(key string) *model.Setting {
	return &model.Setting{Key: key}
}

func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			def := def
			// 已存在的键只同步元数据，保留管理员修改过的值
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"desc", "category", "sensitive"}),
			}).Create(&def).Error
			if err != nil {
				return fmt.Errorf("init default setting %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	if len(allowedKeys) == 0 {
		return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Setting{}).Error
	}
	return r.db.Where(clause.Not(clause.IN{Column: clause.Column{Name: "key"}, Values: toValues(allowedKeys)})).
		Delete(&model.Setting{}).Error
}

func toValues(keys []string) []interface{} {
	values := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		values = append(values, k)
	}
	return values
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(byKey(key)).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var current model.Setting
			err := tx.Where(byKey(item.Key)).First(&current).Error
			if err == nil && current.Sensitive && item.Value == maskedValue {
				// 脱敏占位值原样提交时不覆盖
				continue
			}
			if err != nil {
				if err := tx.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where(byKey(item.Key)).Update("value", item.Value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
