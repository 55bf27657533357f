// Package loop runs callbacks one at a time on a single goroutine.
//
// The toast and dialog engines are not goroutine-safe. Everything that
// touches them (API calls, timer expiry, browser events) is posted to a Loop
// with Dispatch and executed serially by Run.
package loop

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
)

// ErrClosed is returned by Call once the loop has stopped.
var ErrClosed = errors.New("loop: closed")

// DefaultQueueSize is used when New is given a non-positive size.
const DefaultQueueSize = 256

// Loop serializes callbacks.
type Loop struct {
	logger *slog.Logger
	queue  chan func()
	done   chan struct{}
	closed atomic.Bool
	after  func()
}

// New creates a Loop. A nil logger uses slog.Default().
func New(logger *slog.Logger, size int) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Loop{
		logger: logger,
		queue:  make(chan func(), size),
		done:   make(chan struct{}),
	}
}

// AfterEach registers fn to run on the loop after every callback.
// It must be called before Run.
func (l *Loop) AfterEach(fn func()) {
	l.after = fn
}

// Dispatch queues fn. It is safe to call from any goroutine and never
// blocks; when the queue is full the callback is dropped and logged. Use it
// for input that may be discarded, such as browser events.
func (l *Loop) Dispatch(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.queue <- fn:
	case <-l.done:
	default:
		l.logger.Warn("dispatch queue full, discarding callback")
	}
}

// Post queues fn, waiting for room when the queue is full. It returns
// without queuing only once the loop has stopped. Post implements
// clock.Poster; it must not be called from the loop goroutine.
func (l *Loop) Post(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Call queues fn and waits until it has run.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	if l.closed.Load() {
		return ErrClosed
	}
	ran := make(chan struct{})
	select {
	case l.queue <- func() { defer close(ran); fn() }:
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ran:
		return nil
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes queued callbacks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		if l.closed.CompareAndSwap(false, true) {
			close(l.done)
		}
	}()

	for {
		select {
		case fn := <-l.queue:
			l.execute(fn)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	fn()
	if l.after != nil {
		l.after()
	}
}
