package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/handlers"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/SscSPs/personal_finance_app/internal/repositories/database/sqlite"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title PFA Backend API
// @version 1.0
// @description Local personal finance bookkeeping backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the embedded store; migrations run as part of Open.
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Database opened and migrated", slog.String("path", cfg.DBPath))

	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(&repos, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

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
