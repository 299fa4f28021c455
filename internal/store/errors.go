package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCanFrameNotFound is returned when a read, update or delete targets a
	// can_frames row that does not exist.
	ErrCanFrameNotFound = errors.New("can frame was not found")

	// ErrAccountNotFound is returned when no login row matches the requested
	// id or email.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrEmailAlreadyExists is returned when an insert or update collides with
	// the unique email constraint of the login table.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrResetTokenNotFound is returned when a reset token is unknown, already
	// used or expired.
	ErrResetTokenNotFound = errors.New("reset token was not found or is no longer valid")

	// ErrUnsupportedDriver is returned by [NewDB] for a driver name other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
