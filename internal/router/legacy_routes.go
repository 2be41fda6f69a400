package router

import (
	"net/http"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules"
	"art-atlas-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// methodRoutes 按请求方法分发
type methodRoutes map[string]gin.HandlerFunc

// actionRoutes 按 "方法 action" 分发，对应旧接口的 ?action= 参数
type actionRoutes map[string]gin.HandlerFunc

func dispatchMethod(routes methodRoutes) gin.HandlerFunc {
	return func(c *gin.Context) {
		h, ok := routes[c.Request.Method]
		if !ok {
			httpx.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(c)
	}
}

// forMethod 只对指定方法执行中间件
func forMethod(method string, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != method {
			c.Next()
			return
		}
		mw(c)
	}
}

func dispatchAction(routes actionRoutes) gin.HandlerFunc {
	methods := make(map[string]bool, len(routes))
	for key := range routes {
		method, _, _ := strings.Cut(key, " ")
		methods[method] = true
	}

	return func(c *gin.Context) {
		if !methods[c.Request.Method] {
			httpx.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		action := c.Query("action")
		if action == "" {
			httpx.Fail(c, http.StatusBadRequest, "Action required")
			return
		}
		h, ok := routes[c.Request.Method+" "+action]
		if !ok {
			httpx.Fail(c, http.StatusBadRequest, "Invalid action")
			return
		}
		h(c)
	}
}

// registerLegacyRoutes 兼容旧前端的 /backend/*.php 接口，令牌通过 ?session_id= 传递
func registerLegacyRoutes(backend *gin.RouterGroup, g guards, m *modules.AppModules) {
	backend.Use(g.optionalSession)

	index := func(c *gin.Context) {
		httpx.OK(c, http.StatusOK, consts.ApplicationName+" API v"+consts.ApplicationVersion, gin.H{
			"endpoints": gin.H{
				"/auth":     "Authentication (login, logout, register)",
				"/artworks": "Artwork management (CRUD)",
				"/admin":    "Admin operations (user/artwork approval)",
			},
			"version": consts.ApplicationVersion,
			"status":  "active",
		})
	}
	backend.GET("", index)
	backend.GET("/", index)
	backend.GET("/index.php", index)

	backend.Any("/auth.php", g.authLimiter, dispatchAction(actionRoutes{
		"POST login":    m.Auth.Handler.Login,
		"POST register": m.Auth.Handler.Register,
		"POST logout":   m.Auth.Handler.Logout,
		"GET verify":    m.Auth.Handler.Verify,
	}))

	artworks := m.Artwork.Handler
	backend.Any("/artworks.php", dispatchMethod(methodRoutes{
		http.MethodGet: func(c *gin.Context) {
			switch {
			case c.Query("id") != "" && c.Query("related") != "":
				artworks.RelatedArtworks(c)
			case c.Query("id") != "":
				artworks.GetArtwork(c)
			case c.Query("mine") != "":
				artworks.ListMyArtworks(c)
			default:
				artworks.ListArtworks(c)
			}
		},
		http.MethodPost:   artworks.CreateArtwork,
		http.MethodPut:    artworks.UpdateArtwork,
		http.MethodDelete: artworks.DeleteArtwork,
	}))

	backend.Any("/admin.php", dispatchAction(actionRoutes{
		"GET users":            m.User.Handler.ListUsers,
		"GET pending_artworks": artworks.ListPendingArtworks,
		"GET stats":            m.System.Handler.GetStats,
		"POST approve_user":    m.User.Handler.ApproveUser,
		"POST approve_artwork": artworks.ApproveArtwork,
		"POST reject_artwork":  artworks.RejectArtwork,
		"POST flag_artwork":    artworks.FlagArtwork,
		"POST update_user":     m.User.Handler.UpdateUser,
		"POST set_user_status": m.User.Handler.SetUserStatus,
		"POST delete_user":     m.User.Handler.DeleteUser,
	}))

	backend.Any("/reports.php", forMethod(http.MethodPost, g.reportLimiter), dispatchMethod(methodRoutes{
		http.MethodGet:  m.Report.Handler.ListReports,
		http.MethodPost: m.Report.Handler.CreateReport,
		http.MethodPut:  m.Report.Handler.CloseReport,
	}))

	backend.Any("/likes.php", dispatchMethod(methodRoutes{
		http.MethodGet:    m.Like.Handler.GetLikes,
		http.MethodPost:   m.Like.Handler.AddLike,
		http.MethodDelete: m.Like.Handler.RemoveLike,
	}))

	backend.POST("/upload.php", g.uploadLimiter, g.artworkUpload, m.Media.Handler.UploadArtworkImages)
	backend.POST("/upload-profile.php", g.uploadLimiter, g.profileUpload, m.Media.Handler.UploadProfileImage)
}
