package middleware

import (
	"errors"
	"testing"
	"time"

	"art-atlas-server/internal/model"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	"art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

func resetStatusCache() {
	statusCache.Range(func(key, value any) bool {
		statusCache.Delete(key)
		return true
	})
}

func setSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	if err := gdb.Save(&model.Setting{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("设置配置项失败: %v", err)
	}
	testService.ClearCache()
}

type fakeResolver map[string]*model.Session

func (f fakeResolver) ResolveSession(token string) (*model.Session, error) {
	if s, ok := f[token]; ok && !s.IsExpired(time.Now()) {
		return s, nil
	}
	return nil, errors.New("not found")
}

type fakeStatusReader struct {
	statuses map[string]string
	calls    int
}

func (f *fakeStatusReader) GetUserStatus(userID string) (string, error) {
	f.calls++
	if s, ok := f.statuses[userID]; ok {
		return s, nil
	}
	return "", errors.New("not found")
}
