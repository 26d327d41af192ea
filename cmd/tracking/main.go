package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/config"
	"github.com/skumar/cabtrack/internal/pkg/database"
	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/middleware"
	natspkg "github.com/skumar/cabtrack/internal/pkg/nats"
	nrpkg "github.com/skumar/cabtrack/internal/pkg/newrelic"
	"github.com/skumar/cabtrack/internal/pkg/server"
	wspkg "github.com/skumar/cabtrack/internal/pkg/websocket"
	"github.com/skumar/cabtrack/services/tracking"
	"github.com/skumar/cabtrack/services/tracking/gateway"
	"github.com/skumar/cabtrack/services/tracking/handler"
	trackinghttp "github.com/skumar/cabtrack/services/tracking/handler/http"
	"github.com/skumar/cabtrack/services/tracking/repository"
	"github.com/skumar/cabtrack/services/tracking/usecase"
)

const appName = "tracking-service"

func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	nrApp, err := nrpkg.InitApplication(configs.NewRelic)
	if err != nil {
		log.Printf("Warning: New Relic initialization failed: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: appName,
	}, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	db, err := database.NewPostgresDB(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer db.Close()

	if configs.Tracking.MigrateOnStart {
		if err := database.RunMigrations(db, configs.Tracking.MigrationsPath); err != nil {
			logger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Consumer and publisher both ensure the streams: whichever service comes
	// up first wins and the other is a no-op update.
	for _, streamCfg := range natspkg.DefaultStreamConfigs(configs.NATS.LocationTopic, configs.NATS.NotificationTopic) {
		if err := natsClient.CreateStream(streamCfg); err != nil {
			logger.Fatal("Failed to create stream", logger.Err(err))
		}
	}

	hub := wspkg.NewHub(configs.Tracking.BroadcastBuffer)

	locationRepo := repository.NewLocationRepo(db)
	projectionRepo := repository.NewProjectionRepo(redisClient)
	trackingGW := gateway.NewTrackingGW(natsClient, hub, configs.NATS.NotificationTopic)
	trackingUC := usecase.NewTrackingUC(locationRepo, projectionRepo, trackingGW, configs.Tracking)

	queryHandler := trackinghttp.NewQueryHandler(trackingUC)
	wsHandler := handler.NewWebSocketHandler(hub)
	natsHandler := handler.NewNATSHandler(trackingUC, natsClient, configs.NATS.TrackingGroup, configs.NATS.LocationTopic)
	h := handler.NewHandler(queryHandler, wsHandler, natsHandler)

	if err := h.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	prunerCtx, stopPruner := context.WithCancel(context.Background())
	defer stopPruner()
	if configs.Tracking.RetentionMaxAgeHours > 0 {
		go runRetentionPruner(prunerCtx, trackingUC,
			time.Duration(configs.Tracking.RetentionMaxAgeHours)*time.Hour)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recovery())
	if nrApp != nil {
		e.Use(middleware.NewRelicTransaction(nrApp))
	}

	h.RegisterRoutes(e, appName)

	shutdownMgr := server.NewShutdownManager()
	shutdownMgr.Register(func(ctx context.Context) error {
		stopPruner()
		h.Stop()
		natsClient.Close()
		return nil
	})

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(ctx); err != nil {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}
}

// runRetentionPruner periodically removes stored locations older than maxAge.
func runRetentionPruner(ctx context.Context, uc tracking.TrackingUC, maxAge time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.PruneOlderThan(ctx, maxAge); err != nil {
				logger.Error("Retention prune failed", logger.Err(err))
			}
		}
	}
}
