// Package clock schedules delayed callbacks for the engines.
//
// Real timers fire on the runtime's timer goroutine and hand the callback to
// a Poster (normally a loop.Loop), so engine state is only ever touched from
// one goroutine. Manual timers fire synchronously from Advance, which
// lets tests step through toast lifetimes without sleeping.
package clock

import (
	"sort"
	"sync/atomic"
	"time"
)

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Poster runs a callback on the owner's goroutine. Post must not drop fn
// while the owner is running; a fired timer is never retried.
type Poster interface {
	Post(fn func())
}

// Real returns a Scheduler backed by time.AfterFunc that posts every callback
// to p. It panics if p is nil.
func Real(p Poster) Scheduler {
	if p == nil {
		panic("clock: Real requires a Poster")
	}
	return realScheduler{p: p}
}

type realScheduler struct {
	p Poster
}

type realTimer struct {
	t     *time.Timer
	fired atomic.Bool
}

func (s realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	rt := &realTimer{}
	rt.t = time.AfterFunc(d, func() {
		if !rt.fired.CompareAndSwap(false, true) {
			return
		}
		s.p.Post(fn)
	})
	return rt
}

func (t *realTimer) Stop() bool {
	if !t.fired.CompareAndSwap(false, true) {
		return false
	}
	t.t.Stop()
	return true
}

// Manual is a virtual-time Scheduler. It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m       *Manual
	when    time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewManual creates a Manual clock at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, when: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves virtual time forward by d, firing due timers in deadline
// order. Timers scheduled by callbacks fire too if they fall due within d.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.now = next.when
		m.drop(next)
		next.fn()
	}
	m.now = target
}

func (m *Manual) next(target time.Duration) *manualTimer {
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].when != m.timers[j].when {
			return m.timers[i].when < m.timers[j].when
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	if len(m.timers) == 0 || m.timers[0].when > target {
		return nil
	}
	return m.timers[0]
}

func (m *Manual) drop(t *manualTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	for _, other := range t.m.timers {
		if other == t {
			t.m.drop(t)
			return true
		}
	}
	return false
}
