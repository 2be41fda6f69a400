package service

import (
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/events"
	platformservice "art-atlas-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore    repo.UserStore
	sessionStore repo.SessionStore
	publisher    events.Publisher
}

func New(appService *platformservice.AppService, userStore repo.UserStore, sessionStore repo.SessionStore, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		AppService:   appService,
		userStore:    userStore,
		sessionStore: sessionStore,
		publisher:    publisher,
	}
}

func (s *Service) IsRegistrationOpen() bool {
	return s.GetBool(consts.ConfigAllowRegister)
}
