// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-business-card/internal/handler/gateway"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
)

// serve adapts a gateway handler to net/http.
func (h *Handler) serve(fn gateway.Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		req, err := toGatewayRequest(w, r)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Err(err).Str("func", "*Handler.serve").Msg("request body too large")
				writeError(w, http.StatusRequestEntityTooLarge, models.KindInvalidRequest, "request body too large")
				return
			}
			log.Err(err).Str("func", "*Handler.serve").Msg("failed to read request body")
			writeGatewayResponse(w, gateway.BadRequest("failed to read request body"))
			return
		}

		writeGatewayResponse(w, fn(r.Context(), req))
	}
}

func toGatewayRequest(w http.ResponseWriter, r *http.Request) (models.Request, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return models.Request{}, err
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	query := r.URL.Query()
	params := make(map[string]string, len(query))
	for name := range query {
		params[name] = query.Get(name)
	}

	return models.Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     headers,
		QueryParams: params,
		Body:        string(body),
	}, nil
}

func writeGatewayResponse(w http.ResponseWriter, resp models.Response) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	io.WriteString(w, resp.Body)
}

// writeError answers with the same {kind, message} envelope the handlers use.
func writeError(w http.ResponseWriter, status int, kind models.ErrorKind, message string) {
	writeGatewayResponse(w, gateway.ErrorResponse(status, kind, message))
}
