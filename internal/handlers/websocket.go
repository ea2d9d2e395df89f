package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/logger"
)

// StreamTracking upgrades the connection and streams events for :trackingId.
func StreamTracking(stream TrackingStream) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackingID := strings.TrimSpace(c.Param("trackingId"))
		if trackingID == "" {
			badRequest(c, "trackingId is required")
			return
		}

		if err := stream.ServeTracking(c.Writer, c.Request, trackingID); err != nil {
			// The upgrader or the stopped hub has already answered.
			logger.FromContext(c.Request.Context()).Warn().Err(err).Str("tracking_id", trackingID).Msg("websocket upgrade")
		}
	}
}
