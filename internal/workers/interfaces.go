// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has exited and must be safe to call on a worker that never started.
//
// The diary session janitor is the canonical implementation:
//
//	janitor := session.NewJanitor(store, interval, log)
//	ws := workers.New(janitor)
//	ws.Start(ctx)
//	defer ws.Stop()
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
