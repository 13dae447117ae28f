package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-business-card/models"
	"github.com/go-resty/resty/v2"
)

var errorKindMap = map[models.ErrorKind]error{
	models.KindInvalidRequest: ErrInvalidRequest,
	models.KindNotFound:       ErrNotFound,
	models.KindConflict:       ErrConflict,
	models.KindUnauthorized:   ErrUnauthorized,
	models.KindDeleteFailed:   ErrDeleteFailed,
	models.KindInternal:       ErrServer,
}

// mapHTTPError prefers the kind of the error envelope and falls back to the
// status code for bodies that are not an envelope.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var envelope models.ErrorBody
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Kind != "" {
		if known, ok := errorKindMap[envelope.Kind]; ok {
			return fmt.Errorf("%w: %s", known, envelope.Message)
		}
	}

	body := strings.TrimSpace(resp.String())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, body)
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
