package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agent-router/config"
	_ "agent-router/docs" // Swagger docs
	"agent-router/internal/httpserver"
	"agent-router/internal/load"
	"agent-router/internal/matcher"
	"agent-router/internal/registry"
	"agent-router/internal/router"
	"agent-router/internal/router/usecase"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

// @title       Agent Router API
// @description Semantic request router: picks the agent best suited for a task description.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	strategy, err := router.ParseStrategy(cfg.Router.DefaultStrategy)
	if err != nil {
		logger.Errorf(ctx, "router.default_strategy %q: %v", cfg.Router.DefaultStrategy, err)
		return
	}

	// 3. Registry
	reg := registry.New()
	profiles := registry.DefaultProfiles()
	if cfg.Router.ProfilesPath != "" {
		loaded, err := registry.LoadProfiles(cfg.Router.ProfilesPath)
		if err != nil {
			logger.Warnf(ctx, "Agent profiles not loaded, using built-in catalogue: %v", err)
		} else {
			profiles = loaded
			logger.Infof(ctx, "Loaded %d agent profiles from %s", len(loaded), cfg.Router.ProfilesPath)
		}
	}
	for _, p := range profiles {
		if _, err := reg.RegisterAgent(p.AgentName, p); err != nil {
			logger.Errorf(ctx, "Failed to register agent %s: %v", p.AgentName, err)
			return
		}
	}
	if _, err := reg.RegisterService(registry.DefaultService, registry.ServiceInfo{Description: "built-in agent squad"}); err != nil {
		logger.Errorf(ctx, "Failed to register service: %v", err)
		return
	}

	// 4. Load assessor
	var assessor load.Assessor = load.NewStatic()
	if cfg.Load.Mode == load.ModeRedis {
		client, err := load.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warnf(ctx, "Redis telemetry unavailable, using declared loads: %v", err)
		} else {
			defer client.Close()
			assessor = load.NewTelemetry(logger, load.NewRedisSource(client), load.Options{
				Timeout:   cfg.Load.Timeout,
				CacheTTL:  cfg.Load.CacheTTL,
				CacheSize: cfg.Load.CacheSize,
			})
			logger.Infof(ctx, "✅ Redis telemetry connected")
		}
	}

	// 5. Stats
	metrics, err := stats.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Errorf(ctx, "Failed to register metrics: %v", err)
		return
	}
	tracker := stats.New(logger, stats.Options{
		HistoryCapacity: cfg.Router.HistoryCapacity,
		QueueSize:       cfg.Router.StatsQueueSize,
		Metrics:         metrics,
	})

	// 6. Router UseCase
	routerUC := usecase.New(logger, reg, semantic.New(), assessor, tracker, usecase.Config{
		Matcher: matcher.Config{
			Threshold:    cfg.Router.Threshold,
			IntentWeight: cfg.Router.IntentWeight,
			DomainWeight: cfg.Router.DomainWeight,
			BaseTime:     cfg.Router.BaseTime,
		},
		Lookahead:             cfg.Router.Lookahead,
		DefaultAgent:          cfg.Router.DefaultAgent,
		DefaultService:        cfg.Router.DefaultService,
		DefaultStrategy:       strategy,
		DefaultTimeout:        cfg.Router.DefaultTimeout,
		HighPriorityThreshold: cfg.Router.HighPriorityThreshold,
		HybridAlpha:           cfg.Router.HybridAlpha,
		MonitorInterval:       cfg.Router.MonitorInterval,
	})
	routerUC.Start(ctx)
	defer routerUC.Close()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Gatherer:        prometheus.DefaultGatherer,
		RouterUseCase:   routerUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
