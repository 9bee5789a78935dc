package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/easycase/easycase/internal/auth"
)

// ownerKey is the gin context key holding the authenticated owner id.
const ownerKey = "ownerId"

// RequireAuth resolves the bearer credential to an owner identity. A missing
// credential and an invalid one get distinct messages, but all verification
// failure modes collapse into the same opaque 401.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		token := strings.TrimPrefix(raw, "Bearer ")

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		owner, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

// OwnerID returns the owner id attached by RequireAuth.
func OwnerID(c *gin.Context) string {
	v, _ := c.Get(ownerKey)
	owner, _ := v.(string)
	return owner
}

// RateLimit is a fixed-window per-IP limiter; counters expire with the window.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	counters := gocache.New(window, 2*window)
	return func(c *gin.Context) {
		key := c.ClientIP()
		count, err := counters.IncrementInt64(key, 1)
		if err != nil {
			counters.Set(key, int64(1), gocache.DefaultExpiration)
			count = 1
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
