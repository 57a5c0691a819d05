// Package chflow provides context-aware channel helpers: receive, send and a
// counting semaphore that give up when the context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx finished first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first. It reports whether the
// value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

// NewSemaphore returns a Semaphore with n slots, or nil (unbounded) when n <= 0.
func NewSemaphore(n int) Semaphore {
	if n <= 0 {
		return nil
	}
	return make(Semaphore, n)
}

// Acquire takes a slot, waiting until one frees up or ctx is done. A nil
// Semaphore never blocks.
func (s Semaphore) Acquire(ctx context.Context) bool {
	if s == nil {
		return ctx.Err() == nil
	}
	return Send(ctx, s, struct{}{})
}

// Release frees a slot taken by a successful Acquire.
func (s Semaphore) Release() {
	if s != nil {
		<-s
	}
}
