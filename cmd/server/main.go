package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/easayliu/local-files-api/docs"
	"github.com/easayliu/local-files-api/internal/application/services"
	"github.com/easayliu/local-files-api/internal/infrastructure/config"
	"github.com/easayliu/local-files-api/internal/interfaces/http/routes"
	"github.com/easayliu/local-files-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// @title Local Files API
// @version 1.0
// @description 基于Gin框架的本地文件增删改查服务

// @license.name MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 初始化日志
	if err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		Output:     cfg.Log.Output,
		Format:     cfg.Log.Format,
		FilePath:   cfg.Log.FilePath,
		Colorize:   cfg.Log.Colorize,
		AddSource:  cfg.Log.AddSource,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	if cfg.Server.BasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	}

	// 初始化服务容器
	container, err := services.NewServiceContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize service container:", err)
	}

	// 配置文件变化时热更新日志级别与限流
	if err := config.Watch("", func(newCfg *config.Config, err error) {
		if err != nil {
			logger.Warn("Ignoring invalid config change", "error", err)
			return
		}
		if err := container.ApplyRuntimeConfig(newCfg); err != nil {
			logger.Warn("Failed to apply config change", "error", err)
		}
	}); err != nil {
		logger.Info("Config hot reload disabled", "reason", err)
	}

	// 初始化路由
	router := routes.SetupRoutesWithContainer(container)

	scheduler := container.GetSchedulerService()
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 设置信号处理
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 启动服务器
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "storage_root", cfg.Storage.Root)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// 等待退出信号
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	scheduler.Stop()
	logger.Info("Server stopped")
}
