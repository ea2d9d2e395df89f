package services

import (
	"context"

	"github.com/chachabrian/profast-backend/internal/logger"
	"github.com/chachabrian/profast-backend/internal/models"
)

type trackingPublisher interface {
	Publish(ctx context.Context, channel, eventType string, data interface{}) error
}

type trackingStream interface {
	Broadcast(event *models.TrackingLog)
}

type trackingPusher interface {
	NotifyTracking(ctx context.Context, event *models.TrackingLog) error
}

// TrackingNotifier fans a stored tracking event out to Redis, live WebSocket
// subscribers and the shipment's push topic. Every leg is best-effort.
type TrackingNotifier struct {
	publisher trackingPublisher
	stream    trackingStream
	pusher    trackingPusher
	log       *logger.Logger
}

func NewTrackingNotifier(publisher trackingPublisher, stream trackingStream, pusher trackingPusher, log *logger.Logger) *TrackingNotifier {
	return &TrackingNotifier{publisher: publisher, stream: stream, pusher: pusher, log: log}
}

func (n *TrackingNotifier) Notify(ctx context.Context, event *models.TrackingLog) {
	log := logger.FromContext(ctx)

	if err := n.publisher.Publish(ctx, ChannelParcelTracking, "tracking_event", event); err != nil {
		log.Warn().Err(err).Str("tracking_id", event.TrackingID).Msg("publish tracking event")
	}

	n.stream.Broadcast(event)

	// The push outlives the request.
	pushCtx := context.WithoutCancel(ctx)
	go func() {
		if err := n.pusher.NotifyTracking(pushCtx, event); err != nil {
			n.log.Warn().Err(err).Str("tracking_id", event.TrackingID).Msg("tracking push")
		}
	}()
}
