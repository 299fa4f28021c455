package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells [DB.retry] whether a failed statement may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the classification of constraint violations, syntax
	// errors, data exceptions and anything the driver did not report.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, deadlocks,
	// serialization failures and a server that is still starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver
// by inspecting the SQLSTATE of the returned *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Class 08 (connection exception)
// and class 40 (transaction rollback) are retryable, as are the class 57 codes
// emitted while the server restarts. A query cancellation (57014) is not,
// since it follows the caller's own context.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return Retryable
	}

	switch code {
	case pgerrcode.CannotConnectNow, pgerrcode.AdminShutdown, pgerrcode.CrashShutdown:
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator]. It reports whether err
// carries the unique_violation code (23505), raised by login.email and
// reset_password.token.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}
