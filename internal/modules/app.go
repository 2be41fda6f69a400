package modules

import (
	"art-atlas-server/internal/modules/artwork"
	artworkrepo "art-atlas-server/internal/modules/artwork/repo"
	"art-atlas-server/internal/modules/auth"
	authrepo "art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/like"
	likerepo "art-atlas-server/internal/modules/like/repo"
	"art-atlas-server/internal/modules/media"
	"art-atlas-server/internal/modules/media/storage"
	"art-atlas-server/internal/modules/report"
	reportrepo "art-atlas-server/internal/modules/report/repo"
	"art-atlas-server/internal/modules/settings"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	"art-atlas-server/internal/modules/system"
	systemrepo "art-atlas-server/internal/modules/system/repo"
	"art-atlas-server/internal/modules/user"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
)

type AppModules struct {
	Events   *events.Module
	Auth     *auth.Module
	User     *user.Module
	Artwork  *artwork.Module
	Like     *like.Module
	Report   *report.Module
	Media    *media.Module
	Settings *settings.Module
	System   *system.Module
}

func New(
	appService *platformservice.AppService,
	eventsModule *events.Module,
	userStore userrepo.UserStore,
	sessionStore authrepo.SessionStore,
	artworkStore artworkrepo.ArtworkStore,
	likeStore likerepo.LikeStore,
	reportStore reportrepo.ReportStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	mediaStorage storage.Storage,
) *AppModules {
	publisher := eventsModule.Publisher

	authModule := auth.New(appService, userStore, sessionStore, publisher)
	userModule := user.New(user.NewService(appService, userStore, authModule.Service, publisher))
	artworkModule := artwork.New(appService, artworkStore, userModule.Service, publisher)
	likeModule := like.New(likeStore, artworkModule.Service)
	artworkModule.Service.SetLikeCounter(likeModule.Service)
	reportModule := report.New(appService, reportStore, artworkModule.Service, publisher)
	mediaModule := media.New(appService, mediaStorage)
	artworkModule.Service.SetImageRemover(mediaModule.Service)

	return &AppModules{
		Events:   eventsModule,
		Auth:     authModule,
		User:     userModule,
		Artwork:  artworkModule,
		Like:     likeModule,
		Report:   reportModule,
		Media:    mediaModule,
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore),
	}
}
