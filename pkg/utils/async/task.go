package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Task is a single in-flight computation with an explicit join point.
// The release flow uses it to run the remote refresh concurrently with pull
// request enrichment and join both before formatting.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Run starts fn on its own goroutine. The goroutine gets a background context
// that preserves the ctxlog logger but not the caller's cancellation, so an
// early CLI exit does not tear down an in-flight fetch mid-write. Panics are
// recovered and surfaced as errors at the join point.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	newCtx := newBackgroundContext(ctx)
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = goerr.New("panic in async task",
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				)
			}
		}()

		t.val, t.err = fn(newCtx)
	}()

	return t
}

// Wait blocks until the task finishes or ctx is cancelled. It may be called
// more than once; later calls return the same result.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// newBackgroundContext creates a new background context preserving the
// ctxlog logger from the original context
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
