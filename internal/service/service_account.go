package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/internal/store"
	"github.com/solarpanel/tracker-api/internal/validators"
	"github.com/solarpanel/tracker-api/models"
)

// accountService is the concrete implementation of AccountService.
// Passwords are hashed by hasher before they reach the repository and are
// verified against the stored hash on login.
type accountService struct {
	accountRepository store.AccountRepository
	hasher            PasswordHasher
	validator         validators.Validator

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, hasher PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validators.NewRequestValidator(),
		logger:            logger,
	}
}

// Register creates an account for req.Email.
//
// Returns the new account (id and email) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *accountService) Register(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := strings.TrimSpace(req.Email)
	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.Account{}, err
	}

	id, err := a.accountRepository.Create(ctx, email, hash)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Str("email", email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("func", "*accountService.Register").Int64("id", id).Msg("account registered")
	return models.Account{ID: id, Email: email}, nil
}

// Authenticate checks req.Password against the stored hash of req.Email.
//
// Returns the account without its hash or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped store.ErrAccountNotFound for an unknown email.
//   - ErrWrongPassword if the password does not match.
func (a *accountService) Authenticate(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return models.Account{}, fmt.Errorf("error looking up account: %w", err)
	}

	if err = a.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		log.Warn().Str("func", "*accountService.Authenticate").Int64("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	account.PasswordHash = ""
	return account, nil
}

func (a *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	return a.accountRepository.FindByID(ctx, id)
}

func (a *accountService) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	account, err := a.accountRepository.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return models.Account{}, err
	}

	account.PasswordHash = ""
	return account, nil
}

func (a *accountService) List(ctx context.Context) ([]models.Account, error) {
	return a.accountRepository.List(ctx)
}

// Update changes the email and/or password of account id. An omitted email
// keeps the current one.
func (a *accountService) Update(ctx context.Context, id int64, update models.AccountUpdate) error {
	if err := a.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var email string
	if update.Email != nil {
		email = strings.TrimSpace(*update.Email)
	} else {
		current, err := a.accountRepository.FindByID(ctx, id)
		if err != nil {
			return err
		}
		email = current.Email
	}

	var passwordHash *string
	if update.Password != nil {
		hash, err := a.hasher.Hash(*update.Password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}

	if err := a.accountRepository.Update(ctx, id, email, passwordHash); err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) && !errors.Is(err, store.ErrEmailAlreadyExists) {
			logger.FromContext(ctx).Err(err).Str("func", "*accountService.Update").Int64("id", id).Msg("account update ended with error")
		}
		return fmt.Errorf("account update ended with error: %w", err)
	}
	return nil
}

func (a *accountService) Delete(ctx context.Context, id int64) error {
	if err := a.accountRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("account deletion ended with error: %w", err)
	}
	return nil
}
