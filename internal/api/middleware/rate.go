package middleware

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second per client IP
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// minLimiterIdle is the shortest time a client's limiter is kept unused
const minLimiterIdle = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters hands out one limiter per client IP. Limiters idle for longer
// than it takes to refill the whole burst are dropped, since a new one
// behaves the same.
type ipLimiters struct {
	mu        sync.Mutex
	config    RateLimitConfig
	limiters  map[string]*ipLimiter
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiters(config RateLimitConfig) *ipLimiters {
	idle := time.Duration(float64(config.Burst) / config.RPS * float64(time.Second))
	if idle < minLimiterIdle {
		idle = minLimiterIdle
	}
	return &ipLimiters{
		config:    config,
		limiters:  make(map[string]*ipLimiter),
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(l.config.RPS), l.config.Burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (l *ipLimiters) sweep(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimitMiddleware limits each client IP to the configured rate. Excess
// requests get a code 429 envelope.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	// seconds until one token refills, at least 1
	retryAfter := int(math.Ceil(1 / config.RPS))
	if retryAfter < 1 {
		retryAfter = 1
	}

	limiters := newIPLimiters(config)

	return func(c *gin.Context) {
		limiter := limiters.get(utils.GetRealIP(c))

		c.Header("X-RateLimit-Limit", strconv.FormatFloat(config.RPS, 'f', -1, 64))

		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			utils.HandleAPIError(c, errors.New("rate limit exceeded"), common.CodeRateLimited, "too many requests")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
