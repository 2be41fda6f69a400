package router

import (
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/middleware"
	"art-atlas-server/internal/modules"
	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

// guards 各路由组共用的中间件实例
type guards struct {
	optionalSession gin.HandlerFunc
	session         gin.HandlerFunc
	statusCheck     gin.HandlerFunc
	adminCheck      gin.HandlerFunc
	authLimiter     gin.HandlerFunc
	uploadLimiter   gin.HandlerFunc
	reportLimiter   gin.HandlerFunc
	artworkUpload   gin.HandlerFunc
	profileUpload   gin.HandlerFunc
}

func (rt *Router) guards() guards {
	authService := rt.modules.Auth.Service
	userService := rt.modules.User.Service
	return guards{
		optionalSession: middleware.OptionalSession(authService, userService),
		session:         middleware.SessionAuth(authService),
		statusCheck:     middleware.UserStatusCheck(userService),
		adminCheck:      middleware.AdminCheck(),
		authLimiter:     middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst),
		uploadLimiter:   middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst),
		reportLimiter:   middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitReportRPS, consts.ConfigRateLimitReportBurst),
		artworkUpload:   middleware.UploadBodyLimitMiddleware(rt.service, consts.ConfigMaxUploadSize, 5, 10),
		profileUpload:   middleware.UploadBodyLimitMiddleware(rt.service, consts.ConfigMaxProfileUploadSize, 2, 1),
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头与跨域中间件
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	g := rt.guards()

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	registerPublicRoutes(api, g, rt.modules)
	registerSystemRoutes(api, g, rt.modules.System.Handler)
	registerAuthRoutes(api, g, rt.modules.Auth.Handler)
	registerUserRoutes(api, g, rt.modules)
	registerAdminRoutes(api, g, rt.modules)

	backend := r.Group("/backend")
	backend.Use(middleware.BodyLimitMiddleware(rt.service))
	registerLegacyRoutes(backend, g, rt.modules)
}
