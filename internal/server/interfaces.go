package server

// Server is the lifecycle of the diary backend's transport.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down
	// gracefully before returning.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones,
	// bounded by the configured shutdown timeout.
	Shutdown()
}
