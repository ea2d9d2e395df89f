//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handlers_test
package handlers

import (
	"context"
	"net/http"

	"github.com/chachabrian/profast-backend/internal/models"
)

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, channel, eventType string, data interface{}) error
}

type TrackingNotifier interface {
	Notify(ctx context.Context, event *models.TrackingLog)
}

type TrackingStream interface {
	ServeTracking(w http.ResponseWriter, r *http.Request, trackingID string) error
}
