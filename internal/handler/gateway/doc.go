// Package gateway implements the transport-neutral handlers of the service.
//
// Every handler takes a [models.Request] and returns a [models.Response];
// the HTTP server and the Lambda adapter only translate their native types.
// Each outcome of a handler maps to exactly one status code and error kind,
// see errorStatusMap.
package gateway
