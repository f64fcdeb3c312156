package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"openflexSite/internal/api/middleware"
	"openflexSite/internal/config"
	"openflexSite/internal/content"
	"openflexSite/internal/storage"
)

// RegisterRoutes 注册全部业务路由。
// /content 下是后台 CRUD（共享密钥保护），/public 下是站点只读投影。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
	uploader storage.Uploader,
	cfg *config.Config,
) {
	store := content.NewStore(db)
	contentHandler := NewContentHandler(store, logger)
	publicHandler := NewPublicHandler(store, logger)
	uploadHandler := NewUploadHandler(uploader, logger, redisClient, cfg.Upload.ClamdAddr, cfg.Upload.MaxPerDay)
	adminGate := middleware.AdminSecretMiddleware(cfg.Admin.Secret)

	admin := router.Group("/content")
	admin.Use(adminGate)
	{
		admin.GET("/hero", contentHandler.GetHero)
		admin.PUT("/hero", contentHandler.PutHero)

		admin.GET("/about", contentHandler.GetAbout)
		admin.PUT("/about", contentHandler.PutAbout)

		admin.GET("/contacts", contentHandler.GetContact)
		admin.PUT("/contacts", contentHandler.PutContact)

		admin.GET("/services", contentHandler.ListServices)
		admin.POST("/services", contentHandler.CreateService)
		admin.PUT("/services", contentHandler.ReplaceServices)
		admin.DELETE("/services", contentHandler.DeleteAllServices)
		admin.PUT("/services/:id", contentHandler.UpdateService)
		admin.DELETE("/services/:id", contentHandler.DeleteService)

		admin.GET("/clients", contentHandler.ListClients)
		admin.POST("/clients", contentHandler.CreateClient)
		admin.PUT("/clients", contentHandler.BatchUpdateClients)
		admin.PUT("/clients/:id", contentHandler.UpdateClient)
		admin.DELETE("/clients/:id", contentHandler.DeleteClient)

		admin.GET("/faq", contentHandler.ListFAQs)
		admin.POST("/faq", contentHandler.CreateFAQ)
		admin.PUT("/faq/:id", contentHandler.UpdateFAQ)
		admin.DELETE("/faq/:id", contentHandler.DeleteFAQ)
	}

	public := router.Group("/public")
	{
		public.GET("/hero", publicHandler.GetHero)
		public.GET("/about", publicHandler.GetAbout)
		public.GET("/contacts", publicHandler.GetContact)
		public.GET("/services", publicHandler.GetServices)
		public.GET("/clients", publicHandler.GetClients)
		public.GET("/faq", publicHandler.GetFAQs)
	}

	router.POST("/upload", adminGate, uploadHandler.Upload)

	// 本地后端直接由进程托管上传目录。
	if local, ok := uploader.(*storage.LocalUploader); ok {
		router.Static("/uploads", local.BaseDir())
	}
}
