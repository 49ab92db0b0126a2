package bootstrap

import (
	"context"
	"fmt"
	"io"

	"ironmaiden/internal/config"
	"ironmaiden/internal/constant"
	"ironmaiden/internal/controller"
	"ironmaiden/internal/metrics"
	"ironmaiden/internal/pkg/logger"
	"ironmaiden/internal/repository/contract"
	"ironmaiden/internal/repository/implementation"
	"ironmaiden/internal/service"
	"ironmaiden/pkg/clock"
	"ironmaiden/pkg/random"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type Container struct {
	RunId      string
	Logger     logger.ILogger
	Controller controller.ISimulatorController

	pubSub *gochannel.GoChannel
}

// Dependencies lets callers replace the pieces tests need to control. Zero
// values fall back to the production implementations.
type Dependencies struct {
	Repository contract.EventLogRepository
	Random     random.Source
	Clock      clock.Clock
	Logger     logger.ILogger
}

func NewContainer(ctx context.Context, cfg *config.Config, out io.Writer, deps Dependencies) (*Container, error) {
	runId := uuid.New().String()

	// 1. Core Facades
	sysLogger := deps.Logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Verbose)
	}
	repo := deps.Repository
	if repo == nil {
		repo = implementation.NewFileEventLogRepository(cfg.EventLog.Path)
	}
	rnd := deps.Random
	if rnd == nil {
		rnd = random.NewSource(cfg.Generator.Seed)
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}

	// 2. Event Bus
	watermillLogger := logger.NewWatermillAdapter(sysLogger)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermillLogger,
	)

	consumerService := service.NewConsumerService(pubSub, constant.EventBusTopicLogged, out, sysLogger)
	if err := consumerService.Consume(ctx); err != nil {
		pubSub.Close()
		return nil, fmt.Errorf("start event consumer: %w", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(pubSub)
	generatorService := service.NewGeneratorService(rnd, clk)
	eventLogService := service.NewEventLogService(repo, publisherService, sysLogger, runId)
	summaryService := service.NewSummaryService(eventLogService, sysLogger)
	mapService := service.NewMapService(rnd)

	// 4. Controller
	simulatorController := controller.NewSimulatorController(
		out,
		cfg.Generator.Delay,
		generatorService,
		eventLogService,
		summaryService,
		mapService,
		metrics.NewExporter(cfg.Metrics.FilePath),
		sysLogger,
	)

	sysLogger.Debug("BOOTSTRAP", "Container ready", map[string]interface{}{
		"run_id":    runId,
		"event_log": cfg.EventLog.Path,
	})

	return &Container{
		RunId:      runId,
		Logger:     sysLogger,
		Controller: simulatorController,
		pubSub:     pubSub,
	}, nil
}

func (c *Container) Close() error {
	err := c.pubSub.Close()
	_ = c.Logger.Sync()
	return err
}
