package main

import (
	"context"
	"log"
	"math/rand"

	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/clock"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/config"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/corpus"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/handler"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/logger"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/presence"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/repository/memory"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/router"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/service"
	"github.com/alokp5665/simulated-helpdesk-magic-1000-sub001/internal/sse"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Config validation failed:", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer appLogger.Sync()

	// Wall clock and seedable randomness. A zero seed means a fresh corpus
	// on every start; a fixed seed reproduces one.
	clk := clock.New()
	seed := cfg.RandSeed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	appLogger.Info("using random seed", zap.Int64("seed", seed))

	// Initialize in-memory repositories; nothing persists across restarts.
	inboxRepo := memory.NewInMemoryInboxRepository()
	scheduleRepo := memory.NewInMemoryScheduleRepository()

	// Initialize services
	generator := corpus.NewGenerator(rand.New(rand.NewSource(seed)), clk)
	inboxService := service.NewInboxService(inboxRepo, generator, appLogger)
	schedulerService := service.NewSchedulerService(scheduleRepo, inboxService, clk, appLogger)

	// Seed the inbox once at startup
	ctx := context.Background()
	if _, err := inboxService.Refresh(ctx, cfg.SeedCount); err != nil {
		appLogger.Fatal("failed to seed inbox", zap.Error(err))
	}
	appLogger.Info("seeded inbox", zap.Int("count", cfg.SeedCount))

	// Initialize SSE manager for real-time dashboard updates
	sseManager := sse.NewManager(appLogger)

	// Background delivery job: promotes due scheduled emails on a fixed tick
	deliveryJob := sse.NewDeliveryJob(schedulerService, sseManager, clk, appLogger, cfg.DeliveryInterval)
	go deliveryJob.Start()

	// Presence simulator: ephemeral typing and notification signals
	simulator := presence.NewSimulator(
		rand.New(rand.NewSource(seed+1)),
		clk,
		schedulerService,
		sseManager,
		appLogger,
		cfg.PresenceMinInterval,
		cfg.PresenceMaxInterval,
		cfg.TypingDisplay,
	)
	simulator.Start()

	// Initialize handlers
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	inboxHandler := handler.NewInboxHandler(inboxService, cfg.RefreshCount, e.Logger)
	scheduleHandler := handler.NewScheduleHandler(schedulerService, e.Logger)
	streamHandler := handler.NewStreamHandler(sseManager, simulator, e.Logger)

	router.SetupRoutes(e, inboxHandler, scheduleHandler, streamHandler)

	// Start server
	appLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		appLogger.Error("server stopped", zap.Error(err))
		simulator.Stop()
		deliveryJob.Stop()
		sseManager.Close()
	}
}
