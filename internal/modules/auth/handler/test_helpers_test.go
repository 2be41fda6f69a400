package handler

import (
	"testing"

	"art-atlas-server/internal/modules/auth/repo"
	authservice "art-atlas-server/internal/modules/auth/service"
	"art-atlas-server/internal/modules/events"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *authservice.Service
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	sessionStore := repo.NewSessionRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testService = authservice.New(appService, userStore, sessionStore, events.Nop{})
	testHandler = New(testService)
	testService.ClearCache()
	return gdb
}
