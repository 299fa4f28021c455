package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/handler"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/server"
	"github.com/solarpanel/tracker-api/internal/service"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "tracker-api: %v\n", err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closeLog, err := logger.New("tracker-api", logger.Options{Level: cfg.Log.Level, ErrorFile: cfg.Log.ErrorFile})
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer closeLog.Close()

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("reset_token_ttl", cfg.App.ResetTokenTTL).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error connecting database")
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		return err
	}

	services := service.NewServices(store.NewStorages(db, log), *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return err
	}
	return nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
