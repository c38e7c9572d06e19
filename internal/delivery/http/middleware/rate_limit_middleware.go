package middleware

import (
	"net/http"
	"sync"
	"time"

	"hwehweme/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

// clientLimiter pairs a token bucket with the last time its client was seen.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token-bucket limit per client IP. Buckets
// idle past limiterIdleTTL are evicted so the map stays bounded by the
// recently active client set.
type RateLimitMiddleware struct {
	cfg       config.RateLimitConfig
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimitMiddleware creates a new per-IP rate limiter.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg:     cfg.HTTP.RateLimit,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Handle rejects requests over the configured rate with 429.
// Disabled limits pass everything through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.cfg.Enabled {
			return next(c)
		}

		if !m.limiterFor(c.RealIP()).Allow() {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= limiterSweepEvery {
		m.sweepLocked(now)
	}

	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(m.cfg.RPS), m.cfg.Burst)}
		m.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter
}

// sweepLocked evicts buckets idle past the TTL. Callers hold mu.
func (m *RateLimitMiddleware) sweepLocked(now time.Time) {
	for ip, client := range m.clients {
		if now.Sub(client.lastSeen) > limiterIdleTTL {
			delete(m.clients, ip)
		}
	}
	m.lastSweep = now
}
