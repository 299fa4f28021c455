package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles dashboard account creation and lookup against the "login" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new account and returns its id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.builder, email, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.isUniqueViolation(err) {
			return 0, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.Create").Msg("failed to insert account")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// FindByID returns the id and email of account id. The password hash is not
// selected.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account
	err := r.findOne(ctx, "*accountRepository.FindByID", accountPublicColumns, sq.Eq{"id": id},
		&account.ID, &account.Email)
	return account, err
}

// FindByEmail returns the account registered with email, including the
// password hash needed to verify a login.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	err := r.findOne(ctx, "*accountRepository.FindByEmail", accountAuthColumns, sq.Eq{"email": email},
		&account.ID, &account.Email, &account.PasswordHash)
	return account, err
}

func (r *accountRepository) findOne(ctx context.Context, funcName string, columns []string, where sq.Eq, dest ...any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(r.builder, columns, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return err
	}

	err = r.retry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(dest...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to find account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// List returns the id and email of every account ordered by id.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("failed to create query")
		return nil, err
	}

	var accounts []models.Account
	err = r.retry(ctx, func(ctx context.Context) error {
		var listErr error
		accounts, listErr = r.list(ctx, query, args)
		return listErr
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("failed to list accounts")
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) list(ctx context.Context, query string, args []any) ([]models.Account, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 16)
	for rows.Next() {
		var account models.Account
		if scanErr := rows.Scan(&account.ID, &account.Email); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

// Update sets the email of account id and, when passwordHash is not nil,
// its password.
//
// Error handling:
//   - no such id → [ErrAccountNotFound].
//   - email taken by another account → [ErrEmailAlreadyExists].
func (r *accountRepository) Update(ctx context.Context, id int64, email string, passwordHash *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.builder, id, email, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if r.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.Update").Int64("id", id).Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAccountNotFound)
}

// Delete removes account id or returns [ErrAccountNotFound].
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Int64("id", id).Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAccountNotFound)
}
