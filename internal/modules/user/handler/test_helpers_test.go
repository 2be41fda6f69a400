package handler

import (
	"testing"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	userservice "art-atlas-server/internal/modules/user/service"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	userSvc := userservice.New(testService, userStore, nil, events.Nop{})
	testHandler = New(userSvc)
	testService.ClearCache()
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, id, role, status string) {
	t.Helper()
	if err := gdb.Create(&model.User{ID: id, Username: id, Email: id + "@example.com", Password: "x", Name: id, Role: role, Status: status}).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
}

// asActor 模拟已通过会话与状态检查的请求
func asActor(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, id)
		c.Set(middleware.CtxRole, role)
		c.Set(middleware.CtxStatus, consts.UserStatusApproved)
		c.Next()
	}
}
