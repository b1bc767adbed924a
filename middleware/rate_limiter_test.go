package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"citabot/config"
)

func newLimitedRouter(t *testing.T, perMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig.MaxMsgsPerMin = perMin
	// Buckets persist across tests in the package-level store; start fresh.
	limiterStore.limiters = make(map[string]*rate.Limiter)

	r := gin.New()
	r.POST("/api/messages", RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func post(r *gin.Engine, body string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitKeysOnSender(t *testing.T) {
	r := newLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, post(r, `{"from":"+5215550001","body":"hola"}`))
	assert.Equal(t, http.StatusOK, post(r, `{"from":"+5215550001","body":"2"}`))
	assert.Equal(t, http.StatusTooManyRequests, post(r, `{"from":"+5215550001","body":"1"}`))

	// A different requester behind the same bridge IP keeps its own bucket.
	assert.Equal(t, http.StatusOK, post(r, `{"from":"+5215550002","body":"hola"}`))
}

func TestRateLimitFallsBackToClientIP(t *testing.T) {
	r := newLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, post(r, `{"body":"no sender"}`))
	assert.Equal(t, http.StatusOK, post(r, `not json at all`))
	assert.Equal(t, http.StatusTooManyRequests, post(r, `{"body":"still no sender"}`))
}

func TestRateLimitLeavesBodyReadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.MaxMsgsPerMin = 10
	limiterStore.limiters = make(map[string]*rate.Limiter)

	var seen struct {
		From string `json:"from"`
		Body string `json:"body"`
	}
	r := gin.New()
	r.POST("/api/messages", RateLimitMiddleware(), func(c *gin.Context) {
		if err := c.ShouldBindJSON(&seen); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	code := post(r, `{"from":"+5215550003","body":"hola"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "+5215550003", seen.From)
	assert.Equal(t, "hola", seen.Body)
}
