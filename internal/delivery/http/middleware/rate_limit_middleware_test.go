package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hwehweme/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimit(enabled bool, rps float64, burst int) *RateLimitMiddleware {
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: enabled, RPS: rps, Burst: burst}

	return NewRateLimitMiddleware(cfg)
}

func TestRateLimitMiddleware_RejectsOverBurst(t *testing.T) {
	m := newTestRateLimit(true, 0.001, 1)

	e := echo.New()
	handler := m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		return rec
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7").Code)

	// Buckets are per client; another IP still has its burst.
	assert.Equal(t, http.StatusOK, do("203.0.113.8").Code)
}

func TestRateLimitMiddleware_DisabledPassesThrough(t *testing.T) {
	m := newTestRateLimit(false, 0, 0)

	e := echo.New()
	handler := m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Empty(t, m.clients)
}

func TestRateLimitMiddleware_EvictsIdleClients(t *testing.T) {
	m := newTestRateLimit(true, 1, 1)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m.limiterFor("203.0.113.7")
	m.limiterFor("203.0.113.8")
	assert.Len(t, m.clients, 2)

	// Past the idle TTL, the next request sweeps the stale buckets out.
	current = current.Add(limiterIdleTTL + limiterSweepEvery)
	m.limiterFor("203.0.113.9")

	assert.Len(t, m.clients, 1)
	_, ok := m.clients["203.0.113.9"]
	assert.True(t, ok)
}

func TestRateLimitMiddleware_ActiveClientsSurviveSweep(t *testing.T) {
	m := newTestRateLimit(true, 1, 1)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m.limiterFor("203.0.113.7")

	current = current.Add(6 * time.Minute)
	m.limiterFor("203.0.113.7")

	current = current.Add(6 * time.Minute)
	m.limiterFor("203.0.113.8")

	assert.Len(t, m.clients, 2)
	_, ok := m.clients["203.0.113.7"]
	assert.True(t, ok)
}
