package router

import (
	"art-atlas-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	authed := api.Group("")
	authed.Use(g.session)
	authed.Use(g.statusCheck)

	userGroup := authed.Group("/user")
	userGroup.GET("/profile", m.User.Handler.GetProfile)
	userGroup.PATCH("/profile", m.User.Handler.UpdateProfile)
	userGroup.PATCH("/password", g.authLimiter, m.User.Handler.ChangePassword)
	userGroup.GET("/artworks", m.Artwork.Handler.ListMyArtworks)

	authed.POST("/artworks", m.Artwork.Handler.CreateArtwork)
	authed.PUT("/artworks/:id", m.Artwork.Handler.UpdateArtwork)
	authed.DELETE("/artworks/:id", m.Artwork.Handler.DeleteArtwork)
	authed.POST("/artworks/:id/flag", m.Artwork.Handler.FlagArtwork)

	authed.GET("/likes", m.Like.Handler.GetLikes)
	authed.POST("/likes", m.Like.Handler.AddLike)
	authed.DELETE("/likes", m.Like.Handler.RemoveLike)

	authed.POST("/uploads/artwork", g.uploadLimiter, g.artworkUpload, m.Media.Handler.UploadArtworkImages)
}
