// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request is a transport-neutral request delivered by the routing layer
// (an HTTP server or an API gateway).
type Request struct {
	// Method is the HTTP method of the original request.
	Method string
	// Path is the resource path, e.g. "/cards".
	Path string
	// Headers holds single-valued request headers.
	Headers map[string]string
	// QueryParams holds single-valued query string parameters.
	QueryParams map[string]string
	// Body is the raw, still undecoded request body.
	Body string
}

// Query returns the named query parameter or an empty string.
func (r Request) Query(name string) string {
	if r.QueryParams == nil {
		return ""
	}
	return r.QueryParams[name]
}

// Response is the uniform outcome of every handler. Body always contains a
// serialized JSON value.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// ErrorKind classifies a failed request for the caller.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindDeleteFailed   ErrorKind = "delete_failed"
	KindInternal       ErrorKind = "internal"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// MessageBody is the JSON envelope of a success response that carries no
// resource.
type MessageBody struct {
	Message string `json:"message"`
}
