package system

import (
	"art-atlas-server/internal/modules/system/handler"
	"art-atlas-server/internal/modules/system/repo"
	"art-atlas-server/internal/modules/system/service"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore) *Module {
	moduleService := service.New(appService, systemStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
