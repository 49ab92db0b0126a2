package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ironmaiden/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const (
	metadataEventType  = "event_type"
	metadataOccurredAt = "occurred_at"
)

type IPublisherService interface {
	SendMessage(ctx context.Context, topic string, event events.Event) error
}

type publisherService struct {
	publisher message.Publisher
}

func NewPublisherService(publisher message.Publisher) IPublisherService {
	return &publisherService{
		publisher: publisher,
	}
}

func (ps *publisherService) SendMessage(ctx context.Context, topic string, event events.Event) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	msg.Metadata.Set(metadataEventType, event.EventType())
	msg.Metadata.Set(metadataOccurredAt, event.Timestamp().Format(time.RFC3339))
	msg.SetContext(ctx)

	if err := ps.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", topic, err)
	}
	return nil
}
