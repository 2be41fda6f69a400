package artwork

import (
	"art-atlas-server/internal/modules/artwork/handler"
	"art-atlas-server/internal/modules/artwork/repo"
	"art-atlas-server/internal/modules/artwork/service"
	"art-atlas-server/internal/modules/events"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, artworkStore repo.ArtworkStore, users service.UserFinder, publisher events.Publisher) *Module {
	moduleService := service.New(appService, artworkStore, users, publisher)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
