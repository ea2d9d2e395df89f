package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/models"
)

// NewFirebaseApp initialises the Admin SDK from a service-account file.
func NewFirebaseApp(ctx context.Context, credentialsFile string) (*firebase.App, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	return app, nil
}

// NewFirebaseVerifierFromApp wires the auth client of app into a verifier.
func NewFirebaseVerifierFromApp(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}
	return NewFirebaseVerifier(client), nil
}

// PushNotifier sends tracking updates to the FCM topic of a shipment.
// A nil messaging client turns every send into a no-op.
type PushNotifier struct {
	client *messaging.Client
	log    *logger.Logger
}

func NewPushNotifier(ctx context.Context, app *firebase.App, log *logger.Logger) (*PushNotifier, error) {
	if app == nil {
		log.Warn().Msg("firebase not configured, push notifications disabled")
		return &PushNotifier{log: log}, nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}
	return &PushNotifier{client: client, log: log}, nil
}

var topicUnsafe = regexp.MustCompile(`[^a-zA-Z0-9\-_.~%]`)

// TrackingTopic is the FCM topic clients subscribe to for one shipment.
func TrackingTopic(trackingID string) string {
	return "tracking-" + topicUnsafe.ReplaceAllString(trackingID, "_")
}

func (n *PushNotifier) NotifyTracking(ctx context.Context, event *models.TrackingLog) error {
	if n.client == nil {
		return nil
	}

	data := map[string]string{
		"type":        "tracking_event",
		"tracking_id": event.TrackingID,
		"status":      event.Status,
		"time":        event.Time.Format(time.RFC3339),
	}
	if event.ParcelID != nil {
		data["parcel_id"] = event.ParcelID.Hex()
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Parcel %s: %s", event.TrackingID, event.Status),
			Body:  event.Message,
		},
		Data:  data,
		Topic: TrackingTopic(event.TrackingID),
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := n.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send tracking push: %w", err)
	}

	n.log.Debug().Str("message_id", id).Str("topic", message.Topic).Msg("tracking push sent")
	return nil
}
