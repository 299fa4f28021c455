package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/service"
)

type Handler struct {
	services *service.Services

	maxBodyBytes int64

	registry *prometheus.Registry
	metrics  *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}

	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		maxBodyBytes: maxBodyBytes,
		registry:     registry,
		metrics:      newMetrics(registry),
		logger:       logger,
	}
}
