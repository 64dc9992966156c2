package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_UsesConfiguredHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(rate.Limit(1), 1, "X-Real-IP"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, get("10.0.0.1"), "burst of one is spent")
	assert.Equal(t, http.StatusOK, get("10.0.0.2"), "limits are per IP")
}

func TestCache_ServesSecondGetFromStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.New(time.Minute, time.Minute)

	hits := 0
	r := gin.New()
	r.Use(Cache(store, time.Minute))
	r.GET("/", func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "payload")
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, 1, hits)
	assert.Equal(t, "payload", second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	// Flush simulates a mutation; the next GET re-renders.
	store.Flush()
	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 2, hits)
	assert.Empty(t, third.Header().Get("X-Cache"))
}
