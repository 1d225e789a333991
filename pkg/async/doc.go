// Package async provides a small generic Future type and the Delay helper
// used to pace UI-facing flows (debounced saves, artificial spinners, retry
// back-off in demos).
//
// Delay returns a future that completes with nil after the requested
// duration. It is the only suspending helper in this module:
//
//	ctx := context.Background()
//	if _, err := async.Delay(ctx, 300*time.Millisecond).Await(); err != nil {
//	    return err // only possible when ctx is cancelled
//	}
//
// Zero and negative durations complete promptly; DefaultDelay (150ms) is the
// conventional pause when the caller has no preference. The timer fires no
// earlier than requested; how much later depends on the Go scheduler.
//
// Async runs an arbitrary function in its own goroutine and returns a Future
// that can be awaited, awaited with a timeout, polled with IsComplete, or
// selected on through Done. WaitAll and WaitAny combine several futures.
package async
