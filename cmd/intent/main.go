package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/TrustIntent/pkg/common"
	"github.com/NeuralTrust/TrustIntent/pkg/config"
	"github.com/NeuralTrust/TrustIntent/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/TrustIntent/pkg/infra/logger"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustIntent/pkg/server"
	"github.com/NeuralTrust/TrustIntent/pkg/server/router"
	"github.com/NeuralTrust/TrustIntent/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	mode := getMode()
	if mode == "version" {
		fmt.Println(version.GetInfo())
		return
	}
	if mode != common.ModeAPI && mode != common.ModeWorker {
		log.Fatalf("unknown mode %q: expected %q or %q", mode, common.ModeAPI, common.ModeWorker)
	}

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, logCloser, err := infraLogger.NewLogger(infraLogger.Options{
		Mode:    mode,
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Console: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logCloser.Close()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
		EnablePairs:   cfg.Metrics.EnablePairs,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := dependency_container.NewContainer(ctx, dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize dependencies")
		return
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.WithError(err).Warn("error closing dependencies")
		}
	}()

	logger.WithFields(logrus.Fields{
		"mode":     mode,
		"version":  version.Version,
		"provider": container.Provider.Name(),
	}).Info("starting")

	switch mode {
	case common.ModeWorker:
		runWorker(ctx, container, logger)
	default:
		runAPI(ctx, cfg, container, logger)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, c *dependency_container.Container, logger *logrus.Logger) {
	srv := server.NewAPIServer(cfg, logger,
		router.NewAPIRouter(c.MiddlewareTransport, c.HandlerTransport, cfg.Server.Port),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("server failed")
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return
	}
	logger.Info("server gracefully stopped")
}

func runWorker(ctx context.Context, c *dependency_container.Container, logger *logrus.Logger) {
	if err := c.Worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("worker stopped with error")
		return
	}
	logger.Info("worker gracefully stopped")
}

func getMode() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return common.ModeAPI
}
