package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "weatherlookup/internal/api/http"
	"weatherlookup/internal/config"
	"weatherlookup/internal/location"
	"weatherlookup/internal/location/providers"
	"weatherlookup/internal/logger"
	"weatherlookup/internal/lookup"
	"weatherlookup/internal/scheduler"
	"weatherlookup/internal/state"
	"weatherlookup/internal/store"
)

func main() {
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	if err := godotenv.Load(); err != nil {
		log.Infow("no .env file found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Provider clients.
	accuweather := providers.NewAccuWeatherClient(httpClient, cfg.AccuWeatherAPIKey, cfg.Language)
	geoapify := providers.NewGeoapifyClient(httpClient, cfg.GeoapifyAPIKey)
	locator := providers.NewIPLocator(httpClient, cfg.IPLocatorURL, cfg.GeolocationTimeout)

	// Observable state and the pipeline around it.
	container := state.New()
	cache := store.New[location.Record](cfg.CacheTTL)
	resolver := location.NewCachedResolver(
		location.NewResolver(accuweather),
		cache,
		container.CurrentRecord,
	)
	forecasts := location.NewForecastRetriever(accuweather, accuweather, cfg.Language)
	suggestions := location.NewSuggestionEngine(accuweather)

	service := lookup.NewService(resolver, forecasts, suggestions, locator, geoapify, container)

	// Periodic forecast refresh; the interval restarts on a city change.
	sched := scheduler.New(cfg.RefreshInterval, service)
	service.OnCityChange(func(city string) {
		log.Infow("active city changed", "city", city)
		sched.Reset()
	})
	if err := sched.Start(); err != nil {
		log.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-lookup",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorw("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
}
