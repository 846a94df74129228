package services

import (
	"context"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/logging"
)

// NotificationService publishes pipeline events to the Redis Stream
// consumed by the dispatch worker. Publishing is strictly
// fire-and-forget: a failed publish is logged and the pipeline moves
// on.
type NotificationService struct {
	stream *common.NotificationStreamService
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(stream *common.NotificationStreamService) *NotificationService {
	return &NotificationService{stream: stream}
}

// Notify implements the Notifier contract.
func (s *NotificationService) Notify(ctx context.Context, kind, pilotID string, payload map[string]any) {
	event := &common.NotificationEvent{
		Kind:    kind,
		PilotID: pilotID,
		Payload: payload,
		At:      time.Now().UTC(),
	}
	if err := s.stream.Publish(ctx, event); err != nil {
		logging.Warn("Failed to publish notification",
			"kind", kind,
			"pilot_id", pilotID,
			"error", err,
		)
	}
}

// NoopNotifier drops every event. Used when Redis is not configured
// and in tests that don't assert on notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, kind, pilotID string, payload map[string]any) {}
