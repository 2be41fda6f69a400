package service

import (
	"testing"

	"art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/events"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService  *Service
	testRecorder *events.Recorder
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	sessionStore := repo.NewSessionRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testRecorder = &events.Recorder{}
	testService = New(appService, userStore, sessionStore, testRecorder)
	testService.ClearCache()
	return gdb
}
