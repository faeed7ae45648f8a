package services

import (
	"fmt"
	"os"

	"github.com/easayliu/local-files-api/internal/application/contracts"
	"github.com/easayliu/local-files-api/internal/application/services/file"
	"github.com/easayliu/local-files-api/internal/application/services/task"
	"github.com/easayliu/local-files-api/internal/infrastructure/config"
	"github.com/easayliu/local-files-api/internal/infrastructure/filesystem"
	"github.com/easayliu/local-files-api/internal/infrastructure/ratelimit"
	"github.com/easayliu/local-files-api/internal/infrastructure/storage"
	"github.com/easayliu/local-files-api/pkg/logger"
)

// ServiceContainer 应用服务容器 - 实现依赖注入
// 存储根目录在启动时确定,之后不再变化
type ServiceContainer struct {
	config *config.Config

	// 基础设施
	backend *storage.LocalBackend
	limiter *ratelimit.RateLimiter

	// 应用服务
	fileService      contracts.FileService
	schedulerService *task.SchedulerService
}

// NewServiceContainer 按配置创建本地存储并初始化全部服务
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	backend, err := storage.NewLocalBackend(cfg.Storage.Root, storage.Options{
		CreateRoot: cfg.Storage.CreateRoot,
		FileMode:   os.FileMode(cfg.Storage.FileMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	logger.Info("Storage backend ready", "root", backend.Root())
	return NewServiceContainerWithBackend(cfg, backend)
}

// NewServiceContainerWithBackend 使用给定存储初始化服务,测试中可传入内存存储
func NewServiceContainerWithBackend(cfg *config.Config, backend *storage.LocalBackend) (*ServiceContainer, error) {
	container := &ServiceContainer{
		config:  cfg,
		backend: backend,
		limiter: ratelimit.NewRateLimiter(cfg.RateLimit.QPS),
	}

	validator := filesystem.NewFilenameValidator(cfg.Storage.MaxNameLength)
	container.fileService = file.NewAppFileService(backend, validator)

	container.schedulerService = task.NewSchedulerService(backend, container.limiter)
	if cfg.Inventory.Enabled {
		if err := container.schedulerService.ScheduleInventory(cfg.Inventory.Cron); err != nil {
			return nil, fmt.Errorf("failed to schedule inventory: %w", err)
		}
	}
	if err := container.schedulerService.ScheduleRateLimitCleanup(); err != nil {
		return nil, fmt.Errorf("failed to schedule rate limit cleanup: %w", err)
	}

	return container, nil
}

// ApplyRuntimeConfig 应用可在运行期调整的配置: 日志级别与限流 QPS
// 存储、监听地址等其余配置需重启生效
func (c *ServiceContainer) ApplyRuntimeConfig(cfg *config.Config) error {
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	if old := c.limiter.GetQPS(); old != cfg.RateLimit.QPS {
		c.limiter.SetQPS(cfg.RateLimit.QPS)
		// 从不限流切换为限流时需要补上回收任务
		if err := c.schedulerService.ScheduleRateLimitCleanup(); err != nil {
			return err
		}
		logger.Info("Rate limit updated", "old_qps", old, "qps", cfg.RateLimit.QPS)
	}
	return nil
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetFileService 获取文件服务
func (c *ServiceContainer) GetFileService() contracts.FileService {
	return c.fileService
}

// GetSchedulerService 获取调度服务
func (c *ServiceContainer) GetSchedulerService() *task.SchedulerService {
	return c.schedulerService
}

// GetRateLimiter 获取限流器
func (c *ServiceContainer) GetRateLimiter() *ratelimit.RateLimiter {
	return c.limiter
}

// GetStorageInspector 获取存储健康检查
func (c *ServiceContainer) GetStorageInspector() storage.Inspector {
	return c.backend
}
