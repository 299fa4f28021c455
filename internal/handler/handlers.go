package handler

import (
	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/handler/http"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
