package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"citabot/config"
)

// rateLimiterStore holds a map of message senders to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given sender, creating one if it
// doesn't exist.
func (s *rateLimiterStore) getLimiter(sender string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[sender]
	if !exists {
		perMin := config.AppConfig.MaxMsgsPerMin
		if perMin <= 0 {
			perMin = 30
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[sender] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits inbound messages per requester. All messages
// arrive through the same bridge, so the client IP cannot tell requesters
// apart; the sender ID is peeked from the body instead, with the IP as a
// fallback for senderless payloads.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		sender := peekSender(c)
		if sender == "" {
			sender = clientIP(c)
		}
		limiter := limiterStore.getLimiter(sender)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("sender", sender))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

// peekSender extracts the sender ID from the JSON body without consuming it;
// the handler still binds the full message afterwards.
func peekSender(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var peek struct {
		From string `json:"from"`
	}
	if err := json.Unmarshal(bodyBytes, &peek); err != nil {
		return ""
	}
	return strings.TrimSpace(peek.From)
}

// clientIP resolves the caller's address, honoring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// May hold a comma-separated chain; the first entry is the origin.
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && ips[0] != "" {
			return strings.TrimSpace(ips[0])
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
