package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrArticleNotFound is returned when a query or update targets an article
	// (identified by slug) that does not exist or is soft-deleted. Soft-deleted
	// articles are invisible to every read path, so a repeated delete reports
	// this error rather than success.
	ErrArticleNotFound = errors.New("article was not found")

	// ErrBookmarkAlreadyExists is returned when a (user, article) bookmark
	// pair is inserted twice. At most one bookmark exists per pair.
	ErrBookmarkAlreadyExists = errors.New("bookmark already exists")

	// ErrBookmarkNotFound is returned when a lookup or delete targets a
	// bookmark pair that does not exist.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrSubscriptionNotFound is returned when no subscription record exists
	// for the requested target key.
	ErrSubscriptionNotFound = errors.New("subscription was not found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
