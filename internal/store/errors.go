package store

import (
	"errors"
	"fmt"
)

// Top-level error taxonomy. Every repository failure belongs to exactly one
// of these families; callers match with [errors.Is].
var (
	// ErrNotFound is returned when a lookup by id, slug, username or email
	// matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is the umbrella for every storage-enforced
	// invariant breach. The specific sentinels below all wrap it, so
	// errors.Is(err, ErrConstraintViolation) matches any of them.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnectivity is returned when the database is unreachable. It is
	// surfaced, never silently retried by this layer.
	ErrConnectivity = errors.New("storage unreachable")
)

// Specific constraint sentinels. Each names the exact invariant that was
// violated; the store never coerces one of these into a different outcome —
// deciding whether a duplicate follow is an error or a no-op belongs to the
// caller.
var (
	ErrDuplicateUsername = fmt.Errorf("%w: username already taken", ErrConstraintViolation)
	ErrDuplicateEmail    = fmt.Errorf("%w: email already taken", ErrConstraintViolation)
	ErrDuplicateSlug     = fmt.Errorf("%w: article slug already exists", ErrConstraintViolation)
	ErrDuplicateFollow   = fmt.Errorf("%w: follow edge already exists", ErrConstraintViolation)
	ErrDuplicateFavorite = fmt.Errorf("%w: favorite already exists", ErrConstraintViolation)
	ErrSelfFollow        = fmt.Errorf("%w: a user cannot follow themselves", ErrConstraintViolation)

	// ErrForeignKeyViolation is returned when a write references a parent
	// row that does not exist (e.g. commenting on a deleted article).
	ErrForeignKeyViolation = fmt.Errorf("%w: referenced record does not exist", ErrConstraintViolation)
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no columns to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

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
