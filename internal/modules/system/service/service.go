package service

import (
	"art-atlas-server/internal/modules/system/repo"
	platformservice "art-atlas-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
	}
}
