package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the idle ttl are dropped by Sweep.
type IPRateLimiter struct {
	visitors sync.Map
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	clock    clock.Clock
}

func NewIPRateLimiter(r rate.Limit, burst int, idleTTL time.Duration, clk clock.Clock) *IPRateLimiter {
	return &IPRateLimiter{
		rate:    r,
		burst:   burst,
		idleTTL: idleTTL,
		clock:   clk,
	}
}

// NewShowroomRateLimiter guards the public, unauthenticated showroom endpoints.
func NewShowroomRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(cfg.ShowroomRPS), cfg.ShowroomBurst, cfg.IdleTTL, clk)
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	v, ok := i.visitors.Load(ip)
	if !ok {
		v, _ = i.visitors.LoadOrStore(ip, &visitor{limiter: rate.NewLimiter(i.rate, i.burst)})
	}
	vis := v.(*visitor)
	vis.lastSeen.Store(i.clock.Now().UnixNano())
	return vis.limiter
}

// Sweep drops the buckets of clients not seen within the idle ttl and
// returns how many were dropped.
func (i *IPRateLimiter) Sweep() int {
	cutoff := i.clock.Now().Add(-i.idleTTL).UnixNano()
	dropped := 0
	i.visitors.Range(func(key, value any) bool {
		if value.(*visitor).lastSeen.Load() < cutoff {
			i.visitors.CompareAndDelete(key, value)
			dropped++
		}
		return true
	})
	return dropped
}

// Size is the number of tracked client IPs.
func (i *IPRateLimiter) Size() int {
	n := 0
	i.visitors.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RunSweeper sweeps every idle ttl until ctx is done.
func (i *IPRateLimiter) RunSweeper(ctx context.Context) {
	if i.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(i.idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := i.Sweep(); n > 0 {
				slog.Debug("Rate limiter buckets evicted", "count", n)
			}
		}
	}
}

func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.getLimiter(ip).Allow() {
			slog.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Rate limit exceeded"},
			})
			return
		}
		c.Next()
	}
}
