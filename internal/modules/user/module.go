package user

import (
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/user/handler"
	"art-atlas-server/internal/modules/user/repo"
	"art-atlas-server/internal/modules/user/service"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, userStore repo.UserStore, sessions service.SessionEvicter, publisher events.Publisher) *service.Service {
	return service.New(appService, userStore, sessions, publisher)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
