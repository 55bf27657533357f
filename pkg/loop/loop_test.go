package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	l := New(nil, 8)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(cancel)
	return l, cancel
}

func TestDispatchRunsInOrder(t *testing.T) {
	l, _ := startLoop(t)

	var mu sync.Mutex
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}

	if err := l.Call(context.Background(), func() {}); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("ran %d callbacks", len(got))
	}
}

func TestPanicIsRecovered(t *testing.T) {
	l, _ := startLoop(t)

	l.Dispatch(func() { panic("boom") })

	ran := false
	if err := l.Call(context.Background(), func() { ran = true }); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("loop stopped after panic")
	}
}

func TestAfterEach(t *testing.T) {
	l := New(nil, 4)
	var count int
	l.AfterEach(func() { count++ })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	l.Call(context.Background(), func() {})
	l.Call(context.Background(), func() {})

	var got int
	l.Call(context.Background(), func() { got = count })
	if got != 2 {
		t.Errorf("after hook ran %d times before third callback, want 2", got)
	}
}

func TestCallAfterStop(t *testing.T) {
	l, cancel := startLoop(t)
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	if err := l.Call(context.Background(), func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	// Dispatch after close is a no-op.
	l.Dispatch(func() { t.Error("should not run") })
}

func TestPostWaitsForRoom(t *testing.T) {
	l := New(nil, 1)
	var count atomic.Int32
	inc := func() { count.Add(1) }

	l.Dispatch(inc)
	l.Dispatch(inc) // queue full, dropped

	posted := make(chan struct{})
	go func() {
		l.Post(inc)
		close(posted)
	}()

	select {
	case <-posted:
		t.Fatal("Post returned while the queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("Post never queued")
	}
	if err := l.Call(context.Background(), func() {}); err != nil {
		t.Fatal(err)
	}
	if got := count.Load(); got != 2 {
		t.Errorf("ran %d callbacks, want 2", got)
	}
}

func TestPostAfterStop(t *testing.T) {
	l := New(nil, 1)
	l.Dispatch(func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Run(ctx)

	done := make(chan struct{})
	go func() {
		l.Post(func() { t.Error("should not run") })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Post blocked on a stopped loop")
	}
}
