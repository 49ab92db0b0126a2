package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/dto"
	"ironmaiden/internal/entity"
	"ironmaiden/internal/mapper"
	"ironmaiden/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/fatih/color"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService echoes every logged event to the console.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	out        io.Writer
	mapper     *mapper.EventMapper
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	out io.Writer,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		out:        out,
		mapper:     mapper.NewEventMapper(),
		logger:     logger,
	}
}

// Consume registers the subscription synchronously and processes messages in
// the background until the subscriber is closed or ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.EventLoggedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	line := cs.mapper.ToLine(entity.Event{
		Imsi:      payload.Imsi,
		Location:  payload.Location,
		Timestamp: payload.Timestamp,
	})
	title := color.New(color.FgRed, color.Bold).Sprint(constant.MessageEventTitle)
	fmt.Fprintf(cs.out, "%s %s\n", title, line)

	msg.Ack()
}
