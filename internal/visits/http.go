package visits

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminCookie may carry the admin token instead of the Authorization header.
const AdminCookie = "admin_token"

var untracked = []string{"/static/", "/api/", "/admin/", "/favicon", "/healthz"}

// Tracked reports whether a request for path counts as a page view.
func Tracked(path string) bool {
	for _, p := range untracked {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background. Requests sending
// DNT: 1 are never recorded. Close waits for the writes it started.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !Tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Record(ctx, ip, ua, path); err != nil {
				s.logger.Warn("failed to record visit", zap.Error(err))
			}
		}()
		c.Next()
	}
}

// AdminAuth rejects requests that do not present token as a bearer token
// or in the admin cookie.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if got == "" || got == c.GetHeader("Authorization") {
			got, _ = c.Cookie(AdminCookie)
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// StatsHandler serves the visit summary as JSON.
func (s *Store) StatsHandler(c *gin.Context) {
	stats, err := s.Stats(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to load visit stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
