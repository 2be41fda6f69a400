package service

import (
	"testing"

	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	modulerepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testService  *Service
	testEvicter  *fakeEvicter
	testRecorder *events.Recorder
)

type fakeEvicter struct {
	evicted []string
}

func (f *fakeEvicter) EvictUserSessions(userID string) error {
	f.evicted = append(f.evicted, userID)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := modulerepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	testEvicter = &fakeEvicter{}
	testRecorder = &events.Recorder{}
	testService = New(appService, userStore, testEvicter, testRecorder)
	testService.ClearCache()
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, id, email, role, status string) *model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.MinCost)
	u := &model.User{
		ID:       id,
		Username: id,
		Email:    email,
		Password: string(hashed),
		Name:     "Name " + id,
		Role:     role,
		Status:   status,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}
