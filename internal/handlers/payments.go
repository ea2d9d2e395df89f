package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/middleware"
	"github.com/chachabrian/profast-backend/internal/models"
	"github.com/chachabrian/profast-backend/internal/services"
)

type recordPaymentRequest struct {
	ParcelID      string  `json:"parcelId" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId" binding:"required"`
}

// RecordPayment marks the parcel paid and then logs the payment. A parcel
// that is missing or already paid gets no payment record.
func RecordPayment(payments PaymentStore, events EventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "parcelId, email and transactionId are required")
			return
		}

		parcelID, err := database.ParseID(req.ParcelID)
		if err != nil {
			badRequest(c, "Invalid parcelId")
			return
		}

		payment := &models.Payment{
			ParcelID:      parcelID,
			Email:         req.Email,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
		}
		payment.Stamp(time.Now())

		ctx := c.Request.Context()
		id, err := payments.Record(ctx, payment)
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "Parcel not found or already paid")
			return
		}
		if err != nil {
			failure(c, err, "Failed to record payment")
			return
		}

		if err := events.Publish(ctx, services.ChannelPaymentsRecorded, "payment_recorded", payment); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("publish payment recorded")
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Payment recorded and parcel marked as paid",
			"insertedId": id,
		})
	}
}

// ListPayments returns the caller's payment history. Asking for another
// user's history is forbidden.
func ListPayments(payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email := c.Query("email")
		if email == "" {
			email = identity.Email
		}
		if email != identity.Email {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		list, err := payments.ListByEmail(c.Request.Context(), email)
		if err != nil {
			failure(c, err, "Failed to get payments")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

type paymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents" binding:"required,gt=0"`
}

func CreatePaymentIntent(gateway PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "amountInCents must be a positive integer")
			return
		}

		clientSecret, err := gateway.CreatePaymentIntent(c.Request.Context(), req.AmountInCents)
		if err != nil {
			message := err.Error()
			var gwErr *services.GatewayError
			if errors.As(err, &gwErr) {
				message = gwErr.Message
			}
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("create payment intent")
			c.JSON(http.StatusInternalServerError, gin.H{"message": message})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}
