package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"credit-backoffice/internal/config"
	"credit-backoffice/internal/errors"
	"credit-backoffice/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	visitorSweepPeriod = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond int
	burstSize         int
	now               func() time.Time
}

// NewRateLimiter creates a per-IP limiter from the security settings
func NewRateLimiter(cfg config.SecurityConfig) *RateLimiter {
	return &RateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: cfg.RateLimitPerSecond,
		burstSize:         cfg.RateLimitBurst,
		now:               time.Now,
	}
}

// Middleware rejects requests over the limit with SYSTEM_006
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// Run sweeps idle visitors until ctx is cancelled
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burstSize)}
		rl.visitors[ip] = v
	}

	v.lastSeen = rl.now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
