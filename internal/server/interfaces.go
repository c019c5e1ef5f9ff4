package server

// Server is the lifecycle of the diary API listener.
type Server interface {
	// RunServer serves until a stop signal arrives, then returns after the
	// listener has drained.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to a fixed timeout.
	Shutdown()
}
