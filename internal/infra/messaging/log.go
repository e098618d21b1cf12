package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "event", "topic", topic, "payload", json.RawMessage(body))
	return nil
}
