package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/solarpanel/tracker-api/models"
)

const (
	tableCanFrames     = "can_frames"
	tableLogin         = "login"
	tableResetPassword = "reset_password"
)

// canFrameColumns matches the order of [models.CanFrame.ScanTargets].
var canFrameColumns = append([]string{"id", "date"}, models.CanFrameFields...)

var (
	accountPublicColumns = []string{"id", "email"}
	accountAuthColumns   = []string{"id", "email", "password"}
	resetTokenColumns    = []string{"id", "email", "token", "created_at", "expires_at", "used"}
)

// ── can_frames ────────────────────────────────────────────────────────────────

func buildSelectCanFrameQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(canFrameColumns...).
		From(tableCanFrames).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListCanFramesQuery selects frames matching every predicate of filter,
// newest first. Equality predicates are emitted in [models.CanFrameFields]
// order so the generated SQL is stable; keys outside that list are ignored.
func buildListCanFramesQuery(b sq.StatementBuilderType, filter models.CanFrameFilter) (string, []any, error) {
	builder := b.Select(canFrameColumns...).From(tableCanFrames)

	for _, field := range models.CanFrameFields {
		if value, ok := filter.Equals[field]; ok {
			builder = builder.Where(sq.Eq{field: value})
		}
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"date": filter.DateFrom.UTC()})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"date": filter.DateTo.UTC()})
	}

	query, args, err := builder.OrderBy("date DESC", "id DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCanFrameQuery(b sq.StatementBuilderType, frame models.CanFrame) (string, []any, error) {
	columns := append([]string{"date"}, models.CanFrameFields...)
	values := append([]any{frame.Date.UTC()}, frame.Values()...)

	query, args, err := b.Insert(tableCanFrames).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateCanFrameQuery(b sq.StatementBuilderType, frame models.CanFrame) (string, []any, error) {
	builder := b.Update(tableCanFrames).Set("date", frame.Date.UTC())

	values := frame.Values()
	for i, field := range models.CanFrameFields {
		builder = builder.Set(field, values[i])
	}

	query, args, err := builder.Where(sq.Eq{"id": frame.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCanFrameQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(tableCanFrames).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── login ─────────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(b sq.StatementBuilderType, email, passwordHash string) (string, []any, error) {
	query, args, err := b.Insert(tableLogin).
		Columns("email", "password").
		Values(email, passwordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectAccountQuery(b sq.StatementBuilderType, columns []string, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(columns...).From(tableLogin).Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(accountPublicColumns...).From(tableLogin).OrderBy("id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateAccountQuery rewrites the email and, when passwordHash is not
// nil, the password of account id.
func buildUpdateAccountQuery(b sq.StatementBuilderType, id int64, email string, passwordHash *string) (string, []any, error) {
	builder := b.Update(tableLogin).Set("email", email)
	if passwordHash != nil {
		builder = builder.Set("password", *passwordHash)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(tableLogin).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePasswordByEmailQuery(b sq.StatementBuilderType, email, passwordHash string) (string, []any, error) {
	query, args, err := b.Update(tableLogin).
		Set("password", passwordHash).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── reset_password ────────────────────────────────────────────────────────────

func buildInsertResetTokenQuery(b sq.StatementBuilderType, token models.ResetToken) (string, []any, error) {
	query, args, err := b.Insert(tableResetPassword).
		Columns("email", "token", "created_at", "expires_at", "used").
		Values(token.Email, token.Token, token.CreatedAt.UTC(), token.ExpiresAt.UTC(), false).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectValidResetTokenQuery(b sq.StatementBuilderType, token string, now time.Time) (string, []any, error) {
	query, args, err := b.Select(resetTokenColumns...).
		From(tableResetPassword).
		Where(sq.Eq{"token": token, "used": false}).
		Where(sq.Gt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildClaimResetTokenQuery flips a valid token to used and returns the email
// it was issued for. It matches no row when the token is unknown, already
// used or expired.
func buildClaimResetTokenQuery(b sq.StatementBuilderType, token string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(tableResetPassword).
		Set("used", true).
		Where(sq.Eq{"token": token, "used": false}).
		Where(sq.Gt{"expires_at": now.UTC()}).
		Suffix("RETURNING email").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
