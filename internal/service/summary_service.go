package service

import (
	"context"
	"fmt"
	"sort"

	"ironmaiden/internal/dto"
	"ironmaiden/internal/mapper"
	"ironmaiden/internal/pkg/logger"
)

type ISummaryService interface {
	Summarize(ctx context.Context) (*dto.Summary, error)
}

type summaryService struct {
	eventLogService IEventLogService
	mapper          *mapper.EventMapper
	logger          logger.ILogger
}

func NewSummaryService(eventLogService IEventLogService, logger logger.ILogger) ISummaryService {
	return &summaryService{
		eventLogService: eventLogService,
		mapper:          mapper.NewEventMapper(),
		logger:          logger,
	}
}

// Summarize counts every line toward Total and every three-field line toward
// its location. Counts are ordered by descending count; ties keep the order in
// which locations first appear in the log.
func (s *summaryService) Summarize(ctx context.Context) (*dto.Summary, error) {
	lines, found, err := s.eventLogService.ReadLog(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return &dto.Summary{Empty: true, Counts: []dto.LocationCount{}}, nil
	}

	total := 0
	index := make(map[string]int)
	counts := make([]dto.LocationCount, 0)

	for line, err := range lines {
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		total++

		location, ok := s.mapper.LocationOf(line)
		if !ok {
			continue
		}
		i, seen := index[location]
		if !seen {
			i = len(counts)
			index[location] = i
			counts = append(counts, dto.LocationCount{Location: location})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})

	counted := 0
	for _, c := range counts {
		counted += c.Count
	}
	malformed := total - counted
	if malformed > 0 {
		s.logger.Warn("SUMMARY", "Malformed lines excluded from location counts", map[string]interface{}{
			"malformed": malformed,
			"total":     total,
		})
	}

	return &dto.Summary{
		Total:     total,
		Counts:    counts,
		Malformed: malformed,
	}, nil
}
