package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/models"
)

type trackingRequest struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   string `json:"parcel_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}

// AppendTrackingEvent stores a tracking event stamped with the server time
// and fans it out to live subscribers.
func AppendTrackingEvent(tracking TrackingStore, notifier TrackingNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req trackingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid tracking event")
			return
		}

		event := &models.TrackingLog{
			TrackingID: req.TrackingID,
			Status:     req.Status,
			Message:    req.Message,
			Time:       time.Now().UTC(),
			UpdatedBy:  req.UpdatedBy,
		}
		if req.ParcelID != "" {
			id, err := database.ParseID(req.ParcelID)
			if err != nil {
				badRequest(c, "Invalid parcel_id")
				return
			}
			event.ParcelID = &id
		}

		ctx := c.Request.Context()
		result, err := tracking.Append(ctx, event)
		if err != nil {
			failure(c, err, "Failed to add tracking event")
			return
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			event.ID = id
		}

		notifier.Notify(ctx, event)

		c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": result.InsertedID})
	}
}
