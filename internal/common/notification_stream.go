package common

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// NotificationStream is the Redis Stream carrying outbound events
	NotificationStream = "horizon:notifications"

	// NotificationGroup is the consumer group drained by the dispatch worker
	NotificationGroup = "notifiers"
)

// NotificationEvent is one fire-and-forget event for the dispatch worker
type NotificationEvent struct {
	Kind    string         `json:"kind"`
	PilotID string         `json:"pilot_id"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// NotificationStreamService publishes and consumes dispatch events over
// a Redis Stream.
type NotificationStreamService struct {
	client *redis.Client
}

// NewNotificationStreamService creates a new stream service
func NewNotificationStreamService(client *redis.Client) *NotificationStreamService {
	return &NotificationStreamService{client: client}
}

// Publish appends an event to the stream
func (s *NotificationStreamService) Publish(ctx context.Context, event *NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: NotificationStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}
	return nil
}

// CreateConsumerGroup ensures the dispatch group exists; an already
// existing group is not an error.
func (s *NotificationStreamService) CreateConsumerGroup(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, NotificationStream, NotificationGroup, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	return nil
}

// Read blocks for up to blockTime waiting for the next event.
// Returns (nil, "", nil) when the block times out with nothing to read.
func (s *NotificationStreamService) Read(ctx context.Context, consumerName string, blockTime time.Duration) (*NotificationEvent, string, error) {
	args := &redis.XReadGroupArgs{
		Group:    NotificationGroup,
		Consumer: consumerName,
		Streams:  []string{NotificationStream, ">"},
		Count:    1,
		Block:    blockTime,
	}

	streams, err := s.client.XReadGroup(ctx, args).Result()
	if err == redis.Nil {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read from stream: %w", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, "", nil
	}

	msg := streams[0].Messages[0]
	raw, ok := msg.Values["data"].(string)
	if !ok {
		return nil, msg.ID, fmt.Errorf("malformed stream message %s", msg.ID)
	}

	var event NotificationEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, msg.ID, fmt.Errorf("failed to decode notification: %w", err)
	}
	return &event, msg.ID, nil
}

// Ack confirms a processed message
func (s *NotificationStreamService) Ack(ctx context.Context, messageID string) error {
	return s.client.XAck(ctx, NotificationStream, NotificationGroup, messageID).Err()
}
