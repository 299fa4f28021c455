package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/internal/validators"
	"github.com/solarpanel/tracker-api/models"
)

// MessageTokenCreated acknowledges an issued reset token.
const MessageTokenCreated = "Token created, check your mail"

type passwordResetService struct {
	accountRepository    store.AccountRepository
	resetTokenRepository store.ResetTokenRepository

	hasher         PasswordHasher
	tokenGenerator TokenGenerator
	notifier       TokenNotifier
	validator      validators.Validator

	tokenTTL    time.Duration
	exposeToken bool

	now func() time.Time

	logger *logger.Logger
}

func NewPasswordResetService(
	storages *store.Storages,
	hasher PasswordHasher,
	tokenGenerator TokenGenerator,
	notifier TokenNotifier,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	ttl := cfg.ResetTokenTTL
	if ttl <= 0 {
		ttl = config.DefaultResetTokenTTL
	}

	if _, logOnly := notifier.(*logNotifier); logOnly && !cfg.ExposeResetToken {
		logger.Warn().
			Str("func", "NewPasswordResetService").
			Msg("reset tokens are neither delivered nor returned: no mail notifier is configured and APP_EXPOSE_RESET_TOKEN is false")
	}

	return &passwordResetService{
		accountRepository:    storages.AccountRepository,
		resetTokenRepository: storages.ResetTokenRepository,
		hasher:               hasher,
		tokenGenerator:       tokenGenerator,
		notifier:             notifier,
		validator:            validators.NewRequestValidator(),
		tokenTTL:             ttl,
		exposeToken:          cfg.ExposeResetToken,
		now:                  time.Now,
		logger:               logger,
	}
}

// Request issues a reset token for an existing account and hands it to the
// notifier.
//
// Returns:
//   - ErrInvalidDataProvided if the email is empty.
//   - A wrapped store.ErrAccountNotFound for an unknown email.
//   - ErrTokenCreationFailed if the token cannot be generated or stored.
func (p *passwordResetService) Request(ctx context.Context, req models.PasswordResetRequest) (models.ResetTokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return models.ResetTokenResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := p.accountRepository.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return models.ResetTokenResponse{}, fmt.Errorf("error looking up account: %w", err)
	}

	value, err := p.tokenGenerator.Generate()
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.Request").Msg("error generating reset token")
		return models.ResetTokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := p.now().UTC()
	token := models.ResetToken{
		Email:     account.Email,
		Token:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(p.tokenTTL),
	}

	if token.ID, err = p.resetTokenRepository.Create(ctx, token); err != nil {
		log.Err(err).Str("func", "*passwordResetService.Request").Msg("error saving reset token")
		return models.ResetTokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = p.notifier.NotifyResetToken(ctx, token); err != nil {
		// the token is stored and still redeemable
		log.Err(err).Str("func", "*passwordResetService.Request").Msg("error notifying token owner")
	}

	resp := models.ResetTokenResponse{Message: MessageTokenCreated}
	if p.exposeToken {
		resp.Token = token.Token
	}
	return resp, nil
}

// Consume redeems req.Token once and sets req.NewPassword on its account.
//
// Returns:
//   - ErrInvalidDataProvided if token or password is empty.
//   - ErrInvalidResetToken if the token is unknown, used or expired.
//   - ErrPasswordUpdateFailed if storing the new password fails.
func (p *passwordResetService) Consume(ctx context.Context, req models.PasswordResetConsume) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := p.now().UTC()
	if _, err := p.resetTokenRepository.FindValid(ctx, req.Token, now); err != nil {
		return p.redeemError(err)
	}

	hash, err := p.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	email, err := p.resetTokenRepository.Redeem(ctx, req.Token, hash, now)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetService.Consume").Msg("error redeeming reset token")
		return p.redeemError(err)
	}

	log.Info().Str("func", "*passwordResetService.Consume").Str("email", email).Msg("password reset")
	return nil
}

func (p *passwordResetService) redeemError(err error) error {
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidResetToken, err)
	}
	return fmt.Errorf("%w: %w", ErrPasswordUpdateFailed, err)
}
