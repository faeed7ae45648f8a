package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultIdleTTL 客户端限流器空闲多久后被回收
const DefaultIdleTTL = 10 * time.Minute

// RateLimiter 按客户端(通常为IP)区分的 QPS 限制器
type RateLimiter struct {
	mu      sync.Mutex
	qps     int
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter 创建新的速率限制器
// qps: 每个客户端每秒允许的请求数，如果为0或负数则不限制
func NewRateLimiter(qps int) *RateLimiter {
	if qps < 0 {
		qps = 0
	}
	return &RateLimiter{
		qps:     qps,
		clients: make(map[string]*clientLimiter),
	}
}

// Enabled 是否启用限流
func (r *RateLimiter) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.qps > 0
}

// Allow 检查 key 的当前请求是否允许，不阻塞
func (r *RateLimiter) Allow(key string) bool {
	return r.AllowAt(key, time.Now())
}

// AllowAt 以指定时间检查 key 的请求是否允许
func (r *RateLimiter) AllowAt(key string, now time.Time) bool {
	l := r.get(key, now)
	if l == nil {
		return true
	}
	return l.AllowN(now, 1)
}

// SetQPS 动态设置QPS限制，已有客户端的限流器同步更新
func (r *RateLimiter) SetQPS(qps int) {
	if qps < 0 {
		qps = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.qps = qps
	if qps == 0 {
		r.clients = make(map[string]*clientLimiter)
		return
	}
	for _, c := range r.clients {
		c.limiter.SetLimit(rate.Limit(qps))
		c.limiter.SetBurst(qps)
	}
}

// GetQPS 获取当前QPS限制，0 表示无限制
func (r *RateLimiter) GetQPS() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.qps
}

// Len 当前跟踪的客户端数量
func (r *RateLimiter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Cleanup 回收 now 之前 idle 时间内未出现的客户端，返回回收数量
func (r *RateLimiter) Cleanup(now time.Time, idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, c := range r.clients {
		if now.Sub(c.lastSeen) > idle {
			delete(r.clients, key)
			removed++
		}
	}
	return removed
}

func (r *RateLimiter) get(key string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.qps <= 0 {
		return nil
	}

	c, ok := r.clients[key]
	if !ok {
		// 令牌桶大小为QPS，允许短时间内的突发请求
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(r.qps), r.qps)}
		r.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}
