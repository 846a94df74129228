package workers

import (
	"context"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/logging"
)

// NotificationWorker consumes pipeline events off the Redis Stream and
// hands them to delivery. Delivery is currently a structured log line;
// the consumer group keeps at-least-once semantics for when a real
// channel (Discord, email) is plugged in.
type NotificationWorker struct {
	stream       *common.NotificationStreamService
	consumerName string
}

// NewNotificationWorker creates a new notification consumer
func NewNotificationWorker(stream *common.NotificationStreamService, consumerName string) *NotificationWorker {
	return &NotificationWorker{
		stream:       stream,
		consumerName: consumerName,
	}
}

// Start consumes events until the context is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) error {
	if err := w.stream.CreateConsumerGroup(ctx); err != nil {
		return err
	}
	logging.Info("Notification worker starting", "consumer", w.consumerName)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Notification worker shutting down")
			return ctx.Err()
		default:
		}

		event, messageID, err := w.stream.Read(ctx, w.consumerName, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.Warn("Notification read failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if event == nil {
			continue
		}

		w.deliver(event)

		if err := w.stream.Ack(ctx, messageID); err != nil {
			logging.Warn("Notification ack failed", "message_id", messageID, "error", err)
		}
	}
}

func (w *NotificationWorker) deliver(event *common.NotificationEvent) {
	logging.Info("Notification delivered",
		"kind", event.Kind,
		"pilot_id", event.PilotID,
		"payload", event.Payload,
	)
}
