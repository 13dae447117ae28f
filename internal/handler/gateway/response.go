package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func jsonResponse(status int, v any) models.Response {
	body, err := json.Marshal(v)
	if err != nil {
		return errorBodyResponse(http.StatusInternalServerError, models.KindInternal, msgInternal+err.Error())
	}
	return models.Response{StatusCode: status, Headers: headers(), Body: string(body)}
}

func messageResponse(message string) models.Response {
	return jsonResponse(http.StatusOK, models.MessageBody{Message: message})
}

func errorResponse(ctx context.Context, err error) models.Response {
	o := outcomeFromError(err)

	ev := logger.FromContext(ctx).Info()
	if o.status >= http.StatusInternalServerError {
		ev = logger.FromContext(ctx).Error()
	}
	ev.Err(err).Int("status", o.status).Str("kind", string(o.kind)).Msg("request failed")

	return errorBodyResponse(o.status, o.kind, o.message)
}

func errorBodyResponse(status int, kind models.ErrorKind, message string) models.Response {
	body, _ := json.Marshal(models.ErrorBody{Kind: kind, Message: message})
	return models.Response{StatusCode: status, Headers: headers(), Body: string(body)}
}

// headers returns a fresh map so callers may add to it.
func headers() map[string]string {
	h := make(map[string]string, len(jsonHeaders))
	for k, v := range jsonHeaders {
		h[k] = v
	}
	return h
}

// ErrorResponse builds an error envelope response for failures detected by
// a transport outside of the handlers: oversized bodies, unknown routes,
// timeouts.
func ErrorResponse(status int, kind models.ErrorKind, message string) models.Response {
	return errorBodyResponse(status, kind, message)
}

// BadRequest builds an invalid_request response for failures detected by a
// transport before a handler runs.
func BadRequest(message string) models.Response {
	return ErrorResponse(http.StatusBadRequest, models.KindInvalidRequest, message)
}
