package port

import "context"

// TaskDispatcher enqueues asynchronous best-effort housekeeping tasks.
type TaskDispatcher interface {
	// EnqueueDestroyOrphan schedules deletion of a stored object whose
	// database record was never written.
	EnqueueDestroyOrphan(ctx context.Context, publicID string) error
}
