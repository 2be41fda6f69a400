package handler

import (
	"testing"

	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules/artwork/repo"
	artworkservice "art-atlas-server/internal/modules/artwork/service"
	"art-atlas-server/internal/modules/events"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	svc := artworkservice.New(appService, repo.NewArtworkRepository(gdb), userrepo.NewUserRepository(gdb), events.Nop{})
	testHandler = New(svc)
	return gdb
}

func asActor(id, role, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, id)
		c.Set(middleware.CtxRole, role)
		c.Set(middleware.CtxStatus, status)
		c.Next()
	}
}
