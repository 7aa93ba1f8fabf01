package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/agent"
	"travel-assistant/internal/capability"
	"travel-assistant/internal/handler"
	"travel-assistant/internal/httpserver"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	queryHTTP "travel-assistant/internal/query/delivery/http"
	queryUC "travel-assistant/internal/query/usecase"
	"travel-assistant/internal/reasoning"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/openweather"
	"travel-assistant/pkg/tracing"
)

// @title       Travel Assistant API
// @description Answers free-form travel requests with a flight, hotel or travel plan recommendation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Travel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing disabled: %v", err)
	}
	defer func() {
		if shutdownTracing != nil {
			_ = shutdownTracing(context.Background())
		}
	}()

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 0),
	}, logger)

	reasoner := reasoning.New(manager, logger, reasoning.Config{
		MaxAttempts: reasoning.DefaultMaxAttempts,
		Temperature: cfg.LLM.Temperature,
	})

	// 6. Capabilities
	weatherClient := openweather.New(openweather.Config{
		APIKey:     cfg.Weather.APIKey,
		BaseURL:    cfg.Weather.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Weather.Timeout},
	})
	if !weatherClient.HasAPIKey() {
		logger.Warn(ctx, "WEATHER_API_KEY not set, weather lookups will be skipped")
	}

	flights := capability.NewFlightSearch()
	hotels := capability.NewHotelSearch()
	weather := capability.NewWeather(weatherClient, logger)

	tools := agent.NewToolRegistry()
	tools.Register(flights)
	tools.Register(hotels)
	tools.Register(weather)

	// 7. Handlers + router
	r, err := router.New(reasoner, map[model.Intent]handler.Handler{
		model.IntentPlan:   handler.NewPlanner(reasoner, weather, logger, m),
		model.IntentFlight: handler.NewFlight(reasoner, flights, logger, m),
		model.IntentHotel:  handler.NewHotel(reasoner, hotels, logger, m),
	}, logger, m, router.Config{})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize router: %v", err)
		os.Exit(1)
	}

	// 8. Query domain
	uc := queryUC.New(r, logger, m, cfg.Query.Timeout)
	queryHandler := queryHTTP.New(logger, uc)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.New(logger, cfg.RateLimit),
		Gatherer:     registry,
		QueryHandler: queryHandler,
		Capabilities: tools,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
