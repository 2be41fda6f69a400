package service

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"

	"art-atlas-server/internal/model"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"

	"gorm.io/gorm"
)

const defaultValueNotFound = "||__NOT_FOUND__||"

// AppService 承载各业务模块共享的运行时设置读取能力。
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// ClearCache 清空设置缓存，管理员修改设置后调用。
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入缺失的默认设置并清理已废弃的键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}
	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(keys); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == defaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ 读取设置 %s 失败: %v", key, err)
		}
		if def, ok := defaultSetting(key); ok {
			// 忽略并发写入导致的主键冲突
			newSetting := def
			_ = s.settingStore.Create(&newSetting)
			s.settingsCache.Store(key, def.Value)
			return def.Value
		}
		s.settingsCache.Store(key, defaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(strings.TrimSpace(s.GetString(key)))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(strings.TrimSpace(s.GetString(key)), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s.GetString(key)), 64)
	if err != nil {
		return 0
	}
	return val
}

// GetBool 支持 "1", "t", "true" 等 strconv.ParseBool 接受的写法
func (s *AppService) GetBool(key string) bool {
	val, err := strconv.ParseBool(strings.TrimSpace(s.GetString(key)))
	if err != nil {
		return false
	}
	return val
}

func defaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}
