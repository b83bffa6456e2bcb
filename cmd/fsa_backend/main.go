package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fieldhq/field_service_app/internal/core/services"
	"github.com/fieldhq/field_service_app/internal/handlers"
	"github.com/fieldhq/field_service_app/internal/middleware"
	"github.com/fieldhq/field_service_app/internal/platform/config"
	"github.com/fieldhq/field_service_app/internal/platform/seed"
	"github.com/fieldhq/field_service_app/internal/repositories/database/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title FSA Backend API
// @version 1.0
// @description Field service management backend: jobs, clients, estimates, invoices and the KPI dashboard.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The whole catalog lives in memory; seed it before taking traffic.
	repos := memory.NewRepositoryContainer()
	catalog, err := seed.Load(cfg.SeedDataPath)
	if err != nil {
		logger.Error("Failed to load seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := catalog.Apply(context.Background(), repos); err != nil {
		logger.Error("Failed to apply seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seed catalog loaded",
		slog.Int("clients", len(catalog.Clients)),
		slog.Int("jobs", len(catalog.Jobs)),
		slog.Int("estimates", len(catalog.Estimates)),
	)

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
