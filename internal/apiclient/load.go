package apiclient

import (
	"context"
	"sync"
)

// Subscription is one in-flight fetch tied to a mount. After Dispose the
// result is dropped and the request context is canceled.
type Subscription struct {
	cancel   context.CancelFunc
	mu       sync.Mutex
	disposed bool
	done     chan struct{}
}

// Load runs fetch in its own goroutine and hands the result to deliver
// unless the subscription has been disposed first. deliver runs with the
// subscription locked and must not call Dispose.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error), deliver func(T, error)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		defer cancel()

		v, err := fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.disposed {
			return
		}
		deliver(v, err)
	}()

	return s
}

// Dispose suppresses any later delivery. It is safe to call more than once.
func (s *Subscription) Dispose() {
	s.mu.Lock()
	s.disposed = true
	s.mu.Unlock()
	s.cancel()
}

// Done is closed once the fetch goroutine has returned.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
