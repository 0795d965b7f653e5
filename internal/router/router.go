package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sitebuilder/internal/config"
	"github.com/sitebuilder/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// 上传的媒体文件
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := r.Group("/api")
	{
		group.GET("/", api.Hello)

		group.POST("/status", api.CreateStatusCheck)
		group.GET("/status", api.ListStatusChecks)

		group.GET("/projects", api.ListProjects)
		group.POST("/projects", api.SaveProject)
		group.GET("/projects/:id", api.GetProject)
		group.DELETE("/projects/:id", api.DeleteProject)
		group.GET("/project/:id/shared-menu", api.GetSharedMenu)
		group.PUT("/project/:id/shared-menu", api.UpdateSharedMenu)

		group.POST("/upload/image", api.UploadImage)
		group.POST("/upload/video", api.UploadVideo)

		group.POST("/ftp/upload", api.PublishFTP)

		group.POST("/pages", api.CreatePage)
		group.GET("/pages/:project_id", api.ListPages)
		group.GET("/page/:id", api.GetPage)
		group.PUT("/page/:id", api.UpdatePage)
		group.DELETE("/page/:id", api.DeletePage)
		group.POST("/page/:id/duplicate", api.DuplicatePage)
		group.GET("/page/:id/preview", api.PreviewPage)

		group.GET("/settings/:id", api.GetSettings)
		group.PUT("/settings/:id", api.SaveSettings)

		group.POST("/contact/submit", api.SubmitContact)
	}

	return r
}

// corsConfig 允许任意来源时不携带凭据，否则只放行列出的来源。
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
