package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"ironmaiden/internal/constant"
	"ironmaiden/internal/entity"
	"ironmaiden/internal/metrics"
	"ironmaiden/internal/pkg/logger"
	"ironmaiden/internal/service"

	"github.com/fatih/color"
)

// ISimulatorController runs one CLI command and renders its result to out.
type ISimulatorController interface {
	Generate(ctx context.Context, count int) error
	ViewLog(ctx context.Context) error
	Summary(ctx context.Context) error
	AsciiMap(ctx context.Context) error
}

type simulatorController struct {
	out              io.Writer
	delay            time.Duration
	generatorService service.IGeneratorService
	eventLogService  service.IEventLogService
	summaryService   service.ISummaryService
	mapService       service.IMapService
	metrics          *metrics.Exporter
	logger           logger.ILogger
}

func NewSimulatorController(
	out io.Writer,
	delay time.Duration,
	generatorService service.IGeneratorService,
	eventLogService service.IEventLogService,
	summaryService service.ISummaryService,
	mapService service.IMapService,
	metrics *metrics.Exporter,
	logger logger.ILogger,
) ISimulatorController {
	return &simulatorController{
		out:              out,
		delay:            delay,
		generatorService: generatorService,
		eventLogService:  eventLogService,
		summaryService:   summaryService,
		mapService:       mapService,
		metrics:          metrics,
		logger:           logger,
	}
}

// Generate appends count events, pausing between them so timestamps spread
// out. The echo line for each event is printed by the bus consumer.
func (c *simulatorController) Generate(ctx context.Context, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: got %d", entity.ErrInvalidCount, count)
	}

	for i := 0; i < count; i++ {
		if i > 0 && c.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
		}

		event := c.generatorService.GenerateEvent()
		if err := c.eventLogService.LogEvent(ctx, event); err != nil {
			return err
		}
		c.metrics.ObserveGenerated(event.Location)
	}

	c.logger.Info("SIMULATOR", "Generation finished", map[string]interface{}{"count": count})
	return c.metrics.Flush()
}

func (c *simulatorController) ViewLog(ctx context.Context) error {
	lines, found, err := c.eventLogService.ReadLog(ctx)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(c.out, constant.MessageNoEvents)
		return nil
	}

	for line, err := range lines {
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *simulatorController) Summary(ctx context.Context) error {
	summary, err := c.summaryService.Summarize(ctx)
	if err != nil {
		return err
	}
	if summary.Empty {
		fmt.Fprintln(c.out, constant.MessageNoEvents)
		return nil
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(c.out, "Total IMSI-catcher events: %d\n", summary.Total)
	heading.Fprintln(c.out, "Events by location:")
	for _, lc := range summary.Counts {
		fmt.Fprintf(c.out, "  %s: %d\n", lc.Location, lc.Count)
	}

	c.metrics.ObserveSummary(summary)
	return c.metrics.Flush()
}

func (c *simulatorController) AsciiMap(ctx context.Context) error {
	m := c.mapService.RenderMap()

	fmt.Fprintln(c.out)
	color.New(color.FgCyan, color.Bold).Fprintln(c.out, constant.MessageMapTitle)
	for _, row := range m.Rows {
		fmt.Fprintln(c.out, row)
	}
	fmt.Fprintln(c.out, "Legend:")
	for _, entry := range m.Legend {
		fmt.Fprintf(c.out, "  %s: %s\n", entry.Marker, entry.Location)
	}
	return nil
}
