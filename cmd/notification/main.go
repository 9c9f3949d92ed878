package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clinic/internal/config"
	"clinic/internal/kafka"
	"clinic/internal/notification"
	"clinic/internal/server"
	"clinic/internal/server/handlers"
	"clinic/pkg/sl"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		slog.Error("failed to get CONFIG_PATH env variable")
		os.Exit(1)
	}

	cfg, err := config.Init(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := sl.SetupLogger(cfg.Env)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("notification service stopped", sl.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var recorders []notification.Recorder
	if cfg.Kafka.Enabled {
		k, err := kafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := k.Close(); err != nil {
				slog.Error("failed to close kafka producer", sl.Error(err))
			}
		}()

		slog.Info("recording notifications to kafka", slog.String("topic", cfg.Kafka.Topic))
		recorders = append(recorders, k)
	}

	serv := server.New(cfg, logger)
	handlers.NewNotifications(notification.New(logger, recorders...)).Register(serv.Router())

	return serv.Run(ctx)
}
