//go:build wireinject
// +build wireinject

package di

import (
	"art-atlas-server/internal/modules"
	artworkrepo "art-atlas-server/internal/modules/artwork/repo"
	authrepo "art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/events"
	likerepo "art-atlas-server/internal/modules/like/repo"
	reportrepo "art-atlas-server/internal/modules/report/repo"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	systemrepo "art-atlas-server/internal/modules/system/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	"art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		authrepo.NewSessionRepository,
		artworkrepo.NewArtworkRepository,
		likerepo.NewLikeRepository,
		reportrepo.NewReportRepository,
		settingsrepo.NewSettingRepository,
		systemrepo.NewSystemRepository,
		service.NewAppService,
		events.NewModule,
		ProvideStorage,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
