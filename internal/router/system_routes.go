package router

import (
	systemhandler "art-atlas-server/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup, g guards, h *systemhandler.Handler) {
	api.GET("/init", h.GetInitState)
	api.POST("/init", g.authLimiter, h.Init)
}
