package routes

import (
	"net/http"

	"github.com/easayliu/local-files-api/internal/application/services"
	"github.com/easayliu/local-files-api/internal/interfaces/http/handlers"
	"github.com/easayliu/local-files-api/internal/interfaces/http/middleware"
	"github.com/easayliu/local-files-api/pkg/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RoutesConfig 路由配置
type RoutesConfig struct {
	container *services.ServiceContainer
}

// NewRoutesConfig 创建路由配置
func NewRoutesConfig(container *services.ServiceContainer) *RoutesConfig {
	return &RoutesConfig{
		container: container,
	}
}

// SetupRoutes 注册业务路由
func (rc *RoutesConfig) SetupRoutes(router *gin.Engine) {
	cfg := rc.container.GetConfig()

	router.GET("/health", handlers.HealthCheck)

	fileHandler := handlers.NewFileHandler(rc.container)

	api := router.Group(cfg.Server.BasePath)
	files := api.Group("/files", middleware.RateLimitMiddleware(rc.container.GetRateLimiter()))
	{
		files.GET("", fileHandler.ListFiles)
		files.POST("", fileHandler.CreateFile)
		files.GET("/:filename", fileHandler.ReadFile)
		files.PUT("/:filename", fileHandler.UpdateFile)
		files.PATCH("/:filename", fileHandler.UpdateFile)
		files.DELETE("/:filename", fileHandler.DeleteFile)
	}
}

// SetupRoutesWithContainer 创建 gin.Engine 并挂载中间件与全部路由
func SetupRoutesWithContainer(container *services.ServiceContainer) *gin.Engine {
	// 请求绑定的校验规则是全局的,在挂载处理器之前注册
	handlers.RegisterValidators()

	router := gin.New()
	router.RedirectTrailingSlash = true

	// 全局中间件,顺序: 恢复 -> 请求ID -> 访问日志 -> CORS -> 容器注入 -> 错误转换
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ContainerMiddleware(container))
	router.Use(middleware.ErrorHandlerMiddleware())

	// Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		utils.Message(c, http.StatusNotFound, "Ruta no encontrada")
	})

	NewRoutesConfig(container).SetupRoutes(router)

	return router
}
