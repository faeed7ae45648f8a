package task

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/easayliu/local-files-api/internal/infrastructure/ratelimit"
	"github.com/easayliu/local-files-api/internal/infrastructure/storage"
	"github.com/easayliu/local-files-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// 限流器空闲客户端回收周期
const rateLimitCleanupSpec = "@every 5m"

// SchedulerService 后台维护任务: 存储目录统计与限流器回收
type SchedulerService struct {
	cron      *cron.Cron
	inspector storage.Inspector
	limiter   *ratelimit.RateLimiter
	jobs      map[string]cron.EntryID
	mu        sync.Mutex
	running   bool

	lastUsage storage.Usage
	lastRunAt time.Time
}

func NewSchedulerService(inspector storage.Inspector, limiter *ratelimit.RateLimiter) *SchedulerService {
	return &SchedulerService{
		cron:      cron.New(), // 使用标准5字段格式（分 时 日 月 周）
		inspector: inspector,
		limiter:   limiter,
		jobs:      make(map[string]cron.EntryID),
	}
}

// ScheduleInventory 按 cron 表达式定期统计存储目录
func (s *SchedulerService) ScheduleInventory(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return s.schedule("inventory", spec, func() {
		if _, err := s.RunInventory(context.Background()); err != nil {
			logger.Error("Storage inventory failed", "error", err)
		}
	})
}

// ScheduleRateLimitCleanup 定期回收空闲客户端的限流器
func (s *SchedulerService) ScheduleRateLimitCleanup() error {
	if s.limiter == nil || !s.limiter.Enabled() {
		return nil
	}
	return s.schedule("ratelimit-cleanup", rateLimitCleanupSpec, func() {
		if removed := s.limiter.Cleanup(time.Now(), ratelimit.DefaultIdleTTL); removed > 0 {
			logger.Debug("Rate limiter clients evicted", "removed", removed, "remaining", s.limiter.Len())
		}
	})
}

func (s *SchedulerService) schedule(name, spec string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
	}

	entryID, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.jobs[name] = entryID
	logger.Info("Job scheduled", "job", name, "spec", spec)
	return nil
}

// RunInventory 立即统计一次存储目录
func (s *SchedulerService) RunInventory(ctx context.Context) (storage.Usage, error) {
	usage, err := s.inspector.Usage(ctx)
	if err != nil {
		return storage.Usage{}, err
	}

	s.mu.Lock()
	s.lastUsage = usage
	s.lastRunAt = time.Now()
	s.mu.Unlock()

	logger.Info("Storage inventory", "files", usage.Files, "bytes", usage.Bytes)
	return usage, nil
}

// LastInventory 返回最近一次统计结果,尚未统计时 ok 为 false
func (s *SchedulerService) LastInventory() (usage storage.Usage, at time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsage, s.lastRunAt, !s.lastRunAt.IsZero()
}

// Jobs 已注册的任务名
func (s *SchedulerService) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobNames()
}

func (s *SchedulerService) jobNames() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start 启动调度器
func (s *SchedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	s.cron.Start()
	s.running = true
	logger.Info("Scheduler service started", "jobs", s.jobNames())
	return nil
}

// Stop 停止调度器并等待正在执行的任务结束
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	logger.Info("Scheduler service stopped")
}
