package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ironmaiden/internal/dto"
	"ironmaiden/internal/pkg/logger"
	"ironmaiden/internal/repository/implementation"
	"ironmaiden/internal/repository/memory"
	"ironmaiden/pkg/clock"
	"ironmaiden/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFixedSequenceScenario(t *testing.T) {
	ctx := context.Background()
	rnd := &random.Sequence{
		Digits:  random.DigitsOf("123456789012345", "000000000000001", "999999999999999"),
		Choices: []int{0, 0, 1}, // Central Park, Central Park, Times Square
	}
	gen := NewGeneratorService(rnd, clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)))
	repo := implementation.NewFileEventLogRepository(filepath.Join(t.TempDir(), "events.log"))
	log := NewEventLogService(repo, nil, logger.NewNopLogger(), "run")

	wantIds := []string{"123456789012345", "000000000000001", "999999999999999"}
	for _, want := range wantIds {
		event := gen.GenerateEvent()
		require.Equal(t, want, event.Imsi)
		require.NoError(t, log.LogEvent(ctx, event))
	}

	summary, err := NewSummaryService(log, logger.NewNopLogger()).Summarize(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.False(t, summary.Empty)
	assert.Equal(t, []dto.LocationCount{
		{Location: "Central Park", Count: 2},
		{Location: "Times Square", Count: 1},
	}, summary.Counts)
}

func TestSummarizeMissingLog(t *testing.T) {
	repo := implementation.NewFileEventLogRepository(filepath.Join(t.TempDir(), "absent.log"))
	log := NewEventLogService(repo, nil, logger.NewNopLogger(), "run")

	summary, err := NewSummaryService(log, logger.NewNopLogger()).Summarize(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Empty)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.Counts)
}

func TestSummarizeCountsMalformedLinesInTotal(t *testing.T) {
	repo := memory.NewEventLogRepository(
		"2024-05-01 10:00:00 | IMSI: 123456789012345 | Location: Red Square",
		"this line is broken",
		"",
		"2024-05-01 10:00:01 | IMSI: 123456789012345 | Location: Atlantis",
		"a | b | c | d",
		"2024-05-01 10:00:02 | IMSI: 123456789012345 | Location: Red Square",
	)
	log := NewEventLogService(repo, nil, logger.NewNopLogger(), "run")

	summary, err := NewSummaryService(log, logger.NewNopLogger()).Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 3, summary.Malformed)
	assert.Equal(t, []dto.LocationCount{
		{Location: "Red Square", Count: 2},
		{Location: "Atlantis", Count: 1},
	}, summary.Counts)

	sum := 0
	for _, c := range summary.Counts {
		sum += c.Count
	}
	assert.LessOrEqual(t, sum, summary.Total)
}

func TestSummarizeTiesKeepFirstSeenOrder(t *testing.T) {
	repo := memory.NewEventLogRepository(
		"t | IMSI: 1 | Location: Tokyo Tower",
		"t | IMSI: 2 | Location: Colosseum",
		"t | IMSI: 3 | Location: Great Wall",
		"t | IMSI: 4 | Location: Colosseum",
		"t | IMSI: 5 | Location: Great Wall",
		"t | IMSI: 6 | Location: Tokyo Tower",
		"t | IMSI: 7 | Location: London Eye",
	)
	log := NewEventLogService(repo, nil, logger.NewNopLogger(), "run")

	summary, err := NewSummaryService(log, logger.NewNopLogger()).Summarize(context.Background())
	require.NoError(t, err)

	locations := make([]string, 0, len(summary.Counts))
	for _, c := range summary.Counts {
		locations = append(locations, c.Location)
	}
	assert.Equal(t, []string{"Tokyo Tower", "Colosseum", "Great Wall", "London Eye"}, locations)
	assert.Equal(t, 0, summary.Malformed)
}

func TestSummarizeToleratesOverlongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	content := "2024-05-01 10:00:00 | IMSI: 123456789012345 | Location: Central Park\n" +
		strings.Repeat("x", 2*1024*1024) + "\n" +
		"2024-05-01 10:00:01 | IMSI: 000000000000001 | Location: Central Park\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	log := NewEventLogService(implementation.NewFileEventLogRepository(path), nil, logger.NewNopLogger(), "run")
	summary, err := NewSummaryService(log, logger.NewNopLogger()).Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Malformed)
	assert.Equal(t, []dto.LocationCount{{Location: "Central Park", Count: 2}}, summary.Counts)
}
