package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidRequestBody is returned when the body is not a JSON object
	// matching the expected record.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrMissingField is wrapped together with the field name, so the
	// message reads "<field> is required".
	ErrMissingField = errors.New("is required")

	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone format")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
