// Package http implements the HTTP transport of the business-card service.
//
// It wires chi routes onto the transport-neutral gateway handlers and adds
// the cross-cutting concerns of the HTTP server: request tracing, access
// logging, Prometheus metrics, response compression and panic recovery.
// Locally stored profile photos are served under /media.
package http
