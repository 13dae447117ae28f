package gateway

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/validators"
	"github.com/MKhiriev/go-business-card/models"
)

// outcome is the response class of an error. An empty message means the
// error text itself is shown.
type outcome struct {
	status  int
	kind    models.ErrorKind
	message string
}

const (
	msgNotFound     = "No card found for the provided card_id"
	msgConflict     = "duplicate entry exists"
	msgUnauthorized = "Invalid credentials. Check your email and password."
	msgDeleteFailed = "Error deleting card"
	msgInternal     = "Error processing the request: "
)

var errorStatusMap = map[error]outcome{
	service.ErrInvalidRequest:        {status: http.StatusBadRequest, kind: models.KindInvalidRequest},
	validators.ErrInvalidRequestBody: {status: http.StatusBadRequest, kind: models.KindInvalidRequest},

	service.ErrNotFound:     {status: http.StatusNotFound, kind: models.KindNotFound, message: msgNotFound},
	service.ErrConflict:     {status: http.StatusBadRequest, kind: models.KindConflict, message: msgConflict},
	service.ErrUnauthorized: {status: http.StatusUnauthorized, kind: models.KindUnauthorized, message: msgUnauthorized},
	service.ErrDeleteFailed: {status: http.StatusBadRequest, kind: models.KindDeleteFailed, message: msgDeleteFailed},
}

// outcomeFromError classifies err. Anything unknown, store and photo
// storage failures included, is an internal error carrying its cause.
func outcomeFromError(err error) outcome {
	for target, o := range errorStatusMap {
		if errors.Is(err, target) {
			if o.message == "" {
				o.message = err.Error()
			}
			return o
		}
	}
	return outcome{
		status:  http.StatusInternalServerError,
		kind:    models.KindInternal,
		message: msgInternal + err.Error(),
	}
}
