// Package boundary contains render failures to the subtree that raised them.
package boundary

import (
	"context"
	"fmt"
	"sync"

	"github.com/bartal/portfolio/internal/logging"
)

const (
	DefaultTitle   = "Something went wrong"
	DefaultMessage = "We encountered an unexpected error while loading this section. Please try again or refresh the page."
)

// Fallback is what a failed boundary shows instead of its subtree.
type Fallback struct {
	Title    string
	Message  string
	CanRetry bool
}

// Boundary wraps one subtree. The zero value is ready to use.
type Boundary struct {
	// Name identifies the subtree in logs.
	Name string
	// OnError is called once per captured failure.
	OnError func(error)

	mu  sync.Mutex
	err error
}

// Render calls render unless the boundary already holds an error. A
// returned error or a panic is captured and the fallback is returned.
func Render[T any](b *Boundary, render func() (T, error)) (out T, fb *Fallback) {
	if b.Failed() {
		return out, b.fallback()
	}

	defer func() {
		if r := recover(); r != nil {
			b.capture(fmt.Errorf("panic: %v", r))
			var zero T
			out, fb = zero, b.fallback()
		}
	}()

	v, err := render()
	if err != nil {
		b.capture(err)
		return out, b.fallback()
	}
	return v, nil
}

// Err returns the captured error, if any.
func (b *Boundary) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Boundary) Failed() bool {
	return b.Err() != nil
}

// Retry clears the captured error so the next Render tries again.
func (b *Boundary) Retry() {
	b.mu.Lock()
	b.err = nil
	b.mu.Unlock()
}

func (b *Boundary) capture(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()

	logging.NewLogger(context.Background()).LogErrorf("render_boundary", "name=%s error=%v", b.Name, err)
	if b.OnError != nil {
		b.OnError(err)
	}
}

func (b *Boundary) fallback() *Fallback {
	return &Fallback{Title: DefaultTitle, Message: DefaultMessage, CanRetry: true}
}
