package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "todoapi/internal/adapter/http"
	"todoapi/pkg/config"
	"todoapi/pkg/logger"
	"todoapi/pkg/telemetry"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLogger, err := logger.New(cfg.AppEnv, cfg.LogLevel)

	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		ServiceName:    "todoapi",
		ServiceVersion: "1.0.0",
		Environment:    cfg.AppEnv,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry: ", err)
	}

	defer tel.Shutdown(context.Background())

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	metrics.StartSystemMetrics(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		appLogger.Info("Shutting down gracefully...")
		cancel()
	}()

	if err := api.StartServer(ctx, cfg, metrics, appLogger); err != nil {
		appLogger.Error("Server stopped", zap.Error(err))
	}
}
