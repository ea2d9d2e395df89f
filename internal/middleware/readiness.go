package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// RequireReady answers 503 until the database has connected.
func RequireReady(probe ReadinessProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !probe.Ready() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.Next()
	}
}

// Draining rejects new requests once shutdown has begun.
func Draining(isShuttingDown *atomic.Bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.Header("Connection", "close")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "service is shutting down"})
			return
		}
		c.Next()
	}
}
