package service

import (
	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	CanFrameService      CanFrameService
	AccountService       AccountService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	hasher := NewBcryptHasher(bcrypt.DefaultCost)

	canFrameService := NewCanFrameValidationService().
		Wrap(NewCanFrameService(storages.CanFrameRepository, logger))

	return &Services{
		CanFrameService: canFrameService,
		AccountService:  NewAccountService(storages.AccountRepository, hasher, logger),
		PasswordResetService: NewPasswordResetService(
			storages,
			hasher,
			utils.NewTokenGenerator(utils.DefaultTokenBytes),
			NewLogNotifier(logger),
			cfg.App,
			logger,
		),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
