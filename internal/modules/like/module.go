package like

import (
	"art-atlas-server/internal/modules/like/handler"
	"art-atlas-server/internal/modules/like/repo"
	"art-atlas-server/internal/modules/like/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(likeStore repo.LikeStore, artworks service.ArtworkChecker) *Module {
	moduleService := service.New(likeStore, artworks)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
