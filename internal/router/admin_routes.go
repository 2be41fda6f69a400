package router

import (
	"art-atlas-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, g guards, m *modules.AppModules) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(g.session)
	adminGroup.Use(g.statusCheck)
	adminGroup.Use(g.adminCheck)

	adminGroup.GET("/stats", m.System.Handler.GetStats)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)

	adminGroup.GET("/users", m.User.Handler.ListUsers)
	adminGroup.PATCH("/users/:id", m.User.Handler.UpdateUser)
	adminGroup.POST("/users/:id/approve", m.User.Handler.ApproveUser)
	adminGroup.PUT("/users/:id/status", m.User.Handler.SetUserStatus)
	adminGroup.DELETE("/users/:id", m.User.Handler.DeleteUser)

	adminGroup.GET("/pending-artworks", m.Artwork.Handler.ListPendingArtworks)
	adminGroup.POST("/artworks/:id/approve", m.Artwork.Handler.ApproveArtwork)
	adminGroup.POST("/artworks/:id/reject", m.Artwork.Handler.RejectArtwork)

	adminGroup.GET("/events", m.Events.Handler.ServeFeed)

	reports := api.Group("/reports", g.session, g.statusCheck, g.adminCheck)
	reports.GET("", m.Report.Handler.ListReports)
	reports.PUT("/:id", m.Report.Handler.CloseReport)
}
