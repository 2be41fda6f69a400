package router

import (
	"net/http"

	"art-atlas-server/internal/modules"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func ping(c *gin.Context) {
	httpx.OK(c, http.StatusOK, "pong", nil)
}

func registerPublicRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	api.GET("/ping", ping)
	api.GET("/webinfo", m.Settings.Handler.GetWebInfo)
	api.GET("/captcha", g.authLimiter, m.Auth.Handler.GetCaptcha)

	// 匿名可浏览，登录后可以看到自己未发布的作品
	public := api.Group("", g.optionalSession)
	public.GET("/artworks", m.Artwork.Handler.ListArtworks)
	public.GET("/artworks/:id", m.Artwork.Handler.GetArtwork)
	public.GET("/artworks/:id/related", m.Artwork.Handler.RelatedArtworks)
	public.POST("/reports", g.reportLimiter, m.Report.Handler.CreateReport)

	// 注册前上传头像，不要求登录
	api.POST("/uploads/profile", g.uploadLimiter, g.profileUpload, m.Media.Handler.UploadProfileImage)
}
