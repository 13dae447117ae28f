package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCardAlreadyExists is returned when a card is created with a card_id
	// that is already taken. The stored card is left untouched.
	ErrCardAlreadyExists = errors.New("card already exists")

	// ErrCardNotFound is returned when a read or an update targets a card_id
	// that does not exist.
	ErrCardNotFound = errors.New("card was not found")

	// ErrUserAlreadyExists is returned when a new account collides with an
	// existing one on email, phone or card_id.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the given email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrStoreUnavailable wraps every other failure of the record store.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrBlobUnavailable wraps every failure of the blob store.
	ErrBlobUnavailable = errors.New("blob store unavailable")

	// ErrBlobNotFound is returned when a blob key does not exist.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobKey is returned for keys that cannot name a blob.
	ErrInvalidBlobKey = errors.New("invalid blob key")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStoreUnavailable] when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnknownDriver is returned by [NewStorages] for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown storage driver")
)
