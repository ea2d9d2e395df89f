package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/models"
	"github.com/chachabrian/profast-backend/internal/services"
)

// CreateRiderApplication stores the application as sent, defaulting its
// status to pending.
func CreateRiderApplication(riders RiderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := bindDocument(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		if status, _ := doc[models.RiderStatus].(string); status == "" {
			doc[models.RiderStatus] = models.RiderStatusPending
		}
		if _, ok := doc[models.RiderCreatedAt]; !ok {
			doc[models.RiderCreatedAt] = time.Now().UTC()
		}

		result, err := riders.Create(c.Request.Context(), doc)
		if err != nil {
			failure(c, err, "Failed to submit rider application")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// ListRidersByStatus serves both the pending and the active rider lists.
func ListRidersByStatus(riders RiderStore, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := riders.ListByStatus(c.Request.Context(), status)
		if err != nil {
			failure(c, err, "Failed to load riders")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

type updateRiderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Email  string `json:"email"`
}

// UpdateRiderStatus changes a rider's status. Activating an existing rider
// also promotes the rider's user account; that step runs before the response
// but is best-effort and never changes it.
func UpdateRiderStatus(riders RiderStore, users UserStore, events EventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateRiderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Status is required")
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		id := c.Param("id")

		result, err := riders.UpdateStatus(ctx, id, req.Status)
		if err != nil {
			failure(c, err, "Failed to update rider status")
			return
		}

		if req.Status == models.RiderStatusActive && req.Email != "" && result.MatchedCount > 0 {
			if _, err := users.SetRoleByEmail(ctx, req.Email, models.RoleRider); err != nil {
				log.Error().Err(err).Str("email", req.Email).Msg("promote activated rider")
			}
		}

		event := gin.H{"riderId": id, "status": req.Status, "email": req.Email}
		if err := events.Publish(ctx, services.ChannelRiderStatus, "rider_status", event); err != nil {
			log.Warn().Err(err).Msg("publish rider status")
		}

		c.JSON(http.StatusOK, result)
	}
}
