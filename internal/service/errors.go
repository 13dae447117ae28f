package service

import "errors"

// Outcome classes. Every error returned by a service matches exactly one of
// them through errors.Is; transports map them to responses.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrConflict           = errors.New("duplicate entry exists")
	ErrNotFound           = errors.New("no card found for the provided card_id")
	ErrUnauthorized       = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrStorageUnavailable = errors.New("photo storage unavailable")
	ErrDeleteFailed       = errors.New("error deleting card")
)

var ErrCardIDMissing = errors.New("card_id parameter is missing")

// requestError is a rejected request. It matches ErrInvalidRequest while
// keeping the message of the cause, so clients see e.g. "name is required".
type requestError struct {
	cause error
}

func invalidRequest(cause error) error {
	return &requestError{cause: cause}
}

func (e *requestError) Error() string {
	return e.cause.Error()
}

func (e *requestError) Unwrap() []error {
	return []error{ErrInvalidRequest, e.cause}
}
