package auth

import (
	"art-atlas-server/internal/modules/auth/handler"
	"art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/auth/service"
	"art-atlas-server/internal/modules/events"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, sessionStore repo.SessionStore, publisher events.Publisher) *Module {
	moduleService := service.New(appService, userStore, sessionStore, publisher)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
