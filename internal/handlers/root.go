package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReadinessProbe interface {
	Ready() bool
}

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "ProFast Parcel API is running 🚀")
	}
}

// Health answers 503 until the database is reachable.
func Health(db ReadinessProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !db.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
