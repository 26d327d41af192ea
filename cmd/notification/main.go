package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/config"
	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/pkg/middleware"
	natspkg "github.com/skumar/cabtrack/internal/pkg/nats"
	nrpkg "github.com/skumar/cabtrack/internal/pkg/newrelic"
	"github.com/skumar/cabtrack/internal/pkg/retry"
	"github.com/skumar/cabtrack/internal/pkg/server"
	"github.com/skumar/cabtrack/services/notification/handler"
	"github.com/skumar/cabtrack/services/notification/sink"
	"github.com/skumar/cabtrack/services/notification/usecase"
)

const appName = "notification-service"

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	for _, streamCfg := range natspkg.DefaultStreamConfigs(configs.NATS.LocationTopic, configs.NATS.NotificationTopic) {
		if err := natsClient.CreateStream(streamCfg); err != nil {
			logger.Fatal("Failed to create stream", logger.Err(err))
		}
	}

	deliverySink := sink.NewRetryingSink(sink.NewLogSink(), retry.DefaultConfig())
	notificationUC := usecase.NewNotificationUC(deliverySink)
	natsHandler := handler.NewNATSHandler(notificationUC, natsClient,
		configs.NATS.NotificationGroup, configs.NATS.NotificationTopic)
	h := handler.NewHandler(natsHandler)

	if err := h.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
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
