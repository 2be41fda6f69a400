package router

import (
	authhandler "art-atlas-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, g guards, h *authhandler.Handler) {
	authGroup := api.Group("/auth")
	authGroup.POST("/register", g.authLimiter, h.Register)
	authGroup.POST("/login", g.authLimiter, h.Login)
	authGroup.POST("/logout", h.Logout)
	authGroup.GET("/verify", h.Verify)
}
