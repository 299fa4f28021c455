package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/solarpanel/tracker-api/internal/logger"
	"github.com/solarpanel/tracker-api/models"
)

// resetTokenRepository is the SQL-backed implementation of
// [ResetTokenRepository] over the "reset_password" table.
type resetTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *resetTokenRepository) Create(ctx context.Context, token models.ResetToken) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResetTokenQuery(r.builder, token)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Create").Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Create").Str("email", token.Email).Msg("failed to insert reset token")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// FindValid returns the token row when it is unused and expires after now.
func (r *resetTokenRepository) FindValid(ctx context.Context, token string, now time.Time) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValidResetTokenQuery(r.builder, token, now)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindValid").Msg("failed to create query")
		return models.ResetToken{}, err
	}

	var found models.ResetToken
	err = r.retry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&found.ID,
			&found.Email,
			&found.Token,
			&found.CreatedAt,
			&found.ExpiresAt,
			&found.Used,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindValid").Msg("failed to find reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// Redeem claims token and rewrites the password of its account inside one
// transaction. The claim is a conditional UPDATE, so of two concurrent
// redemptions only one can match the row; the loser gets
// [ErrResetTokenNotFound]. Nothing is committed unless both statements
// succeed.
func (r *resetTokenRepository) Redeem(ctx context.Context, token, newHash string, now time.Time) (string, error) {
	log := logger.FromContext(ctx)

	claimQuery, claimArgs, err := buildClaimResetTokenQuery(r.builder, token, now)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Redeem").Msg("failed to create claim query")
		return "", err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Redeem").Msg("failed to begin transaction")
		return "", fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var email string
	err = tx.QueryRowContext(ctx, claimQuery, claimArgs...).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Redeem").Msg("failed to claim reset token")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updateQuery, updateArgs, err := buildUpdatePasswordByEmailQuery(r.builder, email, newHash)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Redeem").Msg("failed to create password update query")
		return "", err
	}

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Redeem").
			Str("email", email).
			Msg("failed to update password")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = expectAffected(result, ErrAccountNotFound); err != nil {
		log.Warn().Err(err).Str("func", "*resetTokenRepository.Redeem").Str("email", email).Msg("token issued for a removed account")
		return "", err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*resetTokenRepository.Redeem").Msg("failed to commit transaction")
		return "", fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("func", "*resetTokenRepository.Redeem").Str("email", email).Msg("password reset token redeemed")
	return email, nil
}
