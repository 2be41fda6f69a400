package settings

import (
	"art-atlas-server/internal/modules/settings/handler"
	"art-atlas-server/internal/modules/settings/repo"
	"art-atlas-server/internal/modules/settings/service"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
