package adapter

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("duplicate entry exists")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrDeleteFailed   = errors.New("error deleting card")
	ErrServer         = errors.New("server error")
)
