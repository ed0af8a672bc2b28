package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jyoo0515/docuflow/internal/core/services"
	"github.com/jyoo0515/docuflow/internal/handlers"
	"github.com/jyoo0515/docuflow/internal/imageref"
	"github.com/jyoo0515/docuflow/internal/locking"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/platform/config"
	"github.com/jyoo0515/docuflow/internal/repositories/drive"
	"github.com/jyoo0515/docuflow/internal/repositories/sheets"
	"github.com/jyoo0515/docuflow/internal/utils"
	"github.com/jyoo0515/docuflow/pkg/googleclient"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clients, err := googleclient.New(context.Background(), cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize Google API clients", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Google API clients established.")

	store := sheets.NewClient(clients.Sheets)
	snapshots := drive.NewSnapshotStore(clients.Drive, clients.HTTPClient, cfg.DocumentLabel)
	extractor := imageref.NewExtractor(logger)

	repos := sheets.NewRepositoryProvider(store, snapshots, extractor, cfg.MainSpreadsheetID, cfg.DataSpreadsheetID)

	lock := locking.NewKeyedLock()
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, repos, lock, posthogClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

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
