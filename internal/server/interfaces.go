package server

// Server runs the card API until it is told to stop. Both the process-level
// server returned by NewServer and the HTTP listener it wraps satisfy it.
type Server interface {
	// RunServer serves the card routes and blocks until the listener closes.
	RunServer()

	// Shutdown drains in-flight requests, bounded by a fixed timeout.
	Shutdown()
}

var (
	_ Server = (*server)(nil)
	_ Server = (*httpServer)(nil)
)
