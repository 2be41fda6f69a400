package di

import (
	"art-atlas-server/internal/modules"
	"art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/router"
)

type Application struct {
	Router     *router.Router
	Modules    *modules.AppModules
	AppService *service.AppService
}

func NewApplication(r *router.Router, m *modules.AppModules, s *service.AppService) *Application {
	return &Application{
		Router:     r,
		Modules:    m,
		AppService: s,
	}
}
