package async

import (
	"context"
	"time"
)

// DefaultDelay is the conventional pause for callers without a preferred duration.
const DefaultDelay = 150 * time.Millisecond

// Future is the eventual result of a computation running in its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// complete must be called exactly once.
func (f *Future[U]) complete(result U, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Await blocks until the computation finishes and returns its outcome.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is Await bounded by timeout. ErrTimeout is returned when the
// computation is still running after timeout; it keeps running regardless.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done is closed once the computation has finished.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in a new goroutine. A context cancelled before
// the goroutine starts completes the future with ctx.Err() without calling fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.complete(zero, err)
			return
		}
		f.complete(fn(ctx, param))
	}()

	return f
}

// Delay returns a future that completes with a nil value once at least d has
// elapsed. A zero or negative d completes promptly; callers wanting the
// default pause pass DefaultDelay. Delay never fails on its own; cancelling
// ctx completes the future early with ctx.Err().
func Delay(ctx context.Context, d time.Duration) *Future[any] {
	d = max(d, 0)

	f := newFuture[any]()
	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			f.complete(nil, nil)
		case <-ctx.Done():
			f.complete(nil, ctx.Err())
		}
	}()

	return f
}

// Sleep blocks for Delay(ctx, d) and returns its error.
func Sleep(ctx context.Context, d time.Duration) error {
	_, err := Delay(ctx, d).Await()
	return err
}

// WaitAll awaits futures in order and stops at the first error. Results of
// futures awaited so far are returned alongside it.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// WaitAny returns the index and outcome of the first future to finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// buffered so losing goroutines never block
	first := make(chan outcome, len(futures))
	for i, f := range futures {
		go func() {
			res, err := f.Await()
			first <- outcome{index: i, result: res, err: err}
		}()
	}

	o := <-first
	return o.index, o.result, o.err
}
