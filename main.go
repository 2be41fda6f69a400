package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"art-atlas-server/internal/config"
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/db"
	"art-atlas-server/internal/di"
	"art-atlas-server/internal/jsonstore"
	"art-atlas-server/internal/middleware"
	artworkrepo "art-atlas-server/internal/modules/artwork/repo"
	authrepo "art-atlas-server/internal/modules/auth/repo"
	"art-atlas-server/internal/modules/common/httpx"
	likerepo "art-atlas-server/internal/modules/like/repo"
	reportrepo "art-atlas-server/internal/modules/report/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	"art-atlas-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	importData := flag.String("import-data", "", "从旧版 JSON 数据目录导入后退出")
	exportData := flag.String("export-data", "", "将数据导出为旧版 JSON 文件后退出")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ 读取 .env 失败: %v", err)
	}

	config.InitConfig(*configDir)
	db.InitDB()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		log.Fatalf("❌ 初始化应用失败: %v", err)
	}
	if err := app.AppService.InitializeSettings(); err != nil {
		log.Fatalf("❌ 初始化系统设置失败: %v", err)
	}

	if *importData != "" || *exportData != "" {
		if err := runDataCommand(db.DB, *importData, *exportData); err != nil {
			log.Fatalf("❌ %v", err)
		}
		return
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	app.Router.Init(r)

	if config.Get().Upload.Storage != "s3" {
		setupStaticFiles(r, app.AppService, ensureUploadDir())
	}
	r.NoRoute(getNoRouteHandler())

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return
	}

	printWelcomeMessage()

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	app.Modules.Events.Hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ 关闭 Redis 连接失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

// runDataCommand 处理 -import-data / -export-data，两者同时给出时先导入再导出
func runDataCommand(gdb *gorm.DB, importDir, exportDir string) error {
	stores := dataStores(gdb)

	if importDir != "" {
		summary, err := jsonstore.Import(importDir, stores)
		if err != nil {
			return fmt.Errorf("导入数据失败: %w", err)
		}
		log.Printf("✅ 已从 %s 导入: %s", importDir, summary)
	}
	if exportDir != "" {
		summary, err := jsonstore.Export(exportDir, stores)
		if err != nil {
			return fmt.Errorf("导出数据失败: %w", err)
		}
		log.Printf("✅ 已导出到 %s: %s", exportDir, summary)
	}
	return nil
}

func dataStores(gdb *gorm.DB) jsonstore.Stores {
	return jsonstore.Stores{
		Users:    userrepo.NewUserRepository(gdb),
		Artworks: artworkrepo.NewArtworkRepository(gdb),
		Sessions: authrepo.NewSessionRepository(gdb),
		Reports:  reportrepo.NewReportRepository(gdb),
		Likes:    likerepo.NewLikeRepository(gdb),
	}
}

func ensureUploadDir() string {
	uploadPath := config.Get().Upload.Path
	if uploadPath == "" {
		uploadPath = "uploads"
	}
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("无法创建上传目录: ", err)
	}
	return uploadPath
}

// setupStaticFiles 本地存储时直接提供上传文件，带缓存控制
func setupStaticFiles(r *gin.Engine, appService *service.AppService, uploadPath string) {
	prefix := config.Get().Upload.URLPrefix
	if prefix == "" {
		prefix = "/uploads/"
	}
	r.Group(prefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(uploadPath, false))
}

func getNoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		prefix := config.Get().Upload.URLPrefix
		if prefix != "" && strings.HasPrefix(path, prefix) {
			httpx.Fail(c, http.StatusNotFound, "Upload not found")
			return
		}
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/backend") {
			httpx.Fail(c, http.StatusNotFound, "Endpoint not found")
			return
		}
		httpx.Fail(c, http.StatusNotFound, "Not found")
	}
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", config.Get().Database.Type)
	fmt.Printf(" │   🖼️  图片存储 : %s\n", config.Get().Upload.Storage)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, _ := json.MarshalIndent(exportList, "", "  ")
	_ = os.WriteFile("routes.json", file, 0644)

	log.Println("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不能设置为项目根目录！", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		relSlash := filepath.ToSlash(rel)

		// 只有位于这些目录下的路径才被允许作为静态资源目录
		allowedDirs := []string{
			"uploads",
			"public",
			"static",
			"data",
			"tmp",
		}

		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				return
			}
		}
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)。", path, relSlash, allowedDirs)
	}
}
