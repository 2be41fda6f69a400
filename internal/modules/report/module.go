package report

import (
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/report/handler"
	"art-atlas-server/internal/modules/report/repo"
	"art-atlas-server/internal/modules/report/service"
	platformservice "art-atlas-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, reportStore repo.ReportStore, artworks service.ArtworkTitles, publisher events.Publisher) *Module {
	moduleService := service.New(appService, reportStore, artworks, publisher)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
