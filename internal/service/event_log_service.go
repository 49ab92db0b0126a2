package service

import (
	"context"
	"fmt"
	"iter"
	"time"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/dto"
	"ironmaiden/internal/entity"
	"ironmaiden/internal/mapper"
	"ironmaiden/internal/pkg/logger"
	"ironmaiden/internal/repository/contract"
	"ironmaiden/pkg/events"
)

type IEventLogService interface {
	// LogEvent validates the event and appends exactly one line.
	LogEvent(ctx context.Context, event entity.Event) error
	// ReadLog returns a lazy, restartable sequence of raw lines. found is
	// false when nothing has been logged yet; the sequence is then empty.
	ReadLog(ctx context.Context) (lines iter.Seq2[string, error], found bool, err error)
}

type eventLogService struct {
	repo      contract.EventLogRepository
	publisher IPublisherService
	mapper    *mapper.EventMapper
	logger    logger.ILogger
	runId     string
}

func NewEventLogService(
	repo contract.EventLogRepository,
	publisher IPublisherService,
	logger logger.ILogger,
	runId string,
) IEventLogService {
	return &eventLogService{
		repo:      repo,
		publisher: publisher,
		mapper:    mapper.NewEventMapper(),
		logger:    logger,
		runId:     runId,
	}
}

func (s *eventLogService) LogEvent(ctx context.Context, event entity.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if err := s.repo.Append(ctx, s.mapper.ToLine(event)); err != nil {
		s.logger.Error("EVENT_LOG", "Failed to append event", map[string]interface{}{
			"error":  err.Error(),
			"run_id": s.runId,
		})
		return fmt.Errorf("log event: %w", err)
	}

	s.logger.Info("EVENT_LOG", "Event logged", map[string]interface{}{
		"run_id":   s.runId,
		"imsi":     event.Imsi,
		"location": event.Location,
	})

	if s.publisher == nil {
		return nil
	}

	evt := events.BaseEvent{
		Type: constant.EventTypeLogged,
		Data: dto.EventLoggedMessage{
			RunId:     s.runId,
			Imsi:      event.Imsi,
			Location:  event.Location,
			Timestamp: event.Timestamp,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.SendMessage(ctx, constant.EventBusTopicLogged, evt); err != nil {
		// The line is already persisted; a lost echo is not fatal.
		s.logger.Warn("EVENT_LOG", "Failed to publish EVENT_LOGGED", map[string]interface{}{
			"error":  err.Error(),
			"run_id": s.runId,
		})
	}
	return nil
}

func (s *eventLogService) ReadLog(ctx context.Context) (iter.Seq2[string, error], bool, error) {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("read log: %w", err)
	}
	if !exists {
		return func(func(string, error) bool) {}, false, nil
	}
	return s.repo.Lines(ctx), true, nil
}
