package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clinic/internal/config"
	"clinic/internal/database"
	"clinic/internal/entities"
	"clinic/internal/memory"
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
		slog.Error("doctor service stopped", sl.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store handlers.DoctorStore
		opts  []server.Option
	)

	switch cfg.Storage {
	case config.StorageMemory:
		store = memory.NewTable[entities.Doctor]("doctor")
	default:
		repo, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer repo.Close()

		slog.Info("connected to database", slog.String("driver", cfg.Database.Driver))

		if store, err = database.NewDoctorStore(ctx, repo); err != nil {
			return err
		}
		opts = append(opts, server.WithHealthCheck(repo.Ping))
	}

	serv := server.New(cfg, logger, opts...)
	handlers.NewDoctors(store).Register(serv.Router(), "/doctors")

	return serv.Run(ctx)
}
