package dialog

import (
	"context"
	"sync"
)

// Future is the deferred result of one prompt. It settles exactly once.
type Future struct {
	done      chan struct{}
	once      sync.Once
	value     any
	err       error
	dismissed bool
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// settle records the outcome; later calls are no-ops. Reports whether this call settled f.
func (f *Future) settle(value any, err error, dismissed bool) bool {
	settled := false
	f.once.Do(func() {
		f.value = value
		f.err = err
		f.dismissed = dismissed
		close(f.done)
		settled = true
	})
	return settled
}

// Await blocks until the prompt is settled or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck // caller's own context error
	}
}

// Done is closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has settled.
func (f *Future) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Dismissed reports whether the prompt was closed without catchOnCancel.
// A dismissed future resolves with a nil value and nil error.
func (f *Future) Dismissed() bool {
	if !f.Settled() {
		return false
	}
	return f.dismissed
}
