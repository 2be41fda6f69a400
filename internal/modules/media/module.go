package media

import (
	"art-atlas-server/internal/modules/media/handler"
	"art-atlas-server/internal/modules/media/service"
	"art-atlas-server/internal/modules/media/storage"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, store storage.Storage) *Module {
	moduleService := service.New(appService, store)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
