package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same e-mail
	// is already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDiaryEntryNotFound is returned when a diary entry does not exist or
	// belongs to another user.
	ErrDiaryEntryNotFound = errors.New("diary entry was not found")

	// ErrReportNotFound is returned when no report exists for the period.
	ErrReportNotFound = errors.New("monthly report was not found")

	// ErrReportAlreadyExists is returned when inserting a report violates the
	// (user, year, month) uniqueness constraint.
	ErrReportAlreadyExists = errors.New("monthly report already exists")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode column")
	ErrDecodingColumn       = errors.New("failed to decode column")
)
