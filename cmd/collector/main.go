// Command collector subscribes to the tracker's raw telemetry on MQTT and
// stores every frame through the tracker API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solarpanel/tracker-api/internal/adapter"
	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/ingest"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "collector: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetCollectorConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closeLog, err := logger.New("collector", logger.Options{Level: cfg.Log.Level, ErrorFile: cfg.Log.ErrorFile})
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer closeLog.Close()

	trackerAdapter, err := adapter.NewHTTPTrackerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating tracker adapter")
		return err
	}

	handler := ingest.NewFrameHandler(trackerAdapter, log)
	subscriber := ingest.NewSubscriber(cfg.MQTT, handler, cfg.Adapter.RequestTimeout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log.Info().Str("api", cfg.Adapter.APIAddress).Str("broker", cfg.MQTT.Broker).Msg("starting collector")
	if err = workers.NewWorkers(subscriber).Run(ctx); err != nil {
		log.Err(err).Msg("collector stopped with error")
		return err
	}
	return nil
}
