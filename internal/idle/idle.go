// Copyright LIMIT Lab, 2026. All rights reserved.

// Package idle tracks pointer activity and reports when the pointer has been
// still for a quiescence window. The terminal browser uses it to start a
// cosmetic animation.
package idle

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used by the terminal browser.
const DefaultWindow = 3 * time.Second

// Timer is the subset of *time.Timer the detector needs.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock wraps time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Detector.
type Option func(*Detector)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Detector) { d.clock = c }
}

// Point is a pointer position.
type Point struct {
	X, Y int
}

// Detector records the last pointer position and flips to idle once no
// movement has been seen for the window. It is safe for concurrent use.
type Detector struct {
	window time.Duration
	onIdle func(Point)
	clock  Clock

	mu      sync.Mutex
	pos     Point
	idle    bool
	gen     uint64
	timer   Timer
	stopped bool
}

// New creates a Detector and starts its first quiescence window. onIdle,
// if non-nil, is called once per idle transition on the timer's goroutine.
func New(window time.Duration, onIdle func(Point), opts ...Option) *Detector {
	d := &Detector{
		window: window,
		onIdle: onIdle,
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.mu.Lock()
	d.arm()
	d.mu.Unlock()
	return d
}

// arm restarts the window. Callers hold mu.
func (d *Detector) arm() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

func (d *Detector) fire(gen uint64) {
	d.mu.Lock()
	// A move or stop after this timer was armed supersedes it.
	if gen != d.gen || d.stopped || d.idle {
		d.mu.Unlock()
		return
	}
	d.idle = true
	pos := d.pos
	cb := d.onIdle
	d.mu.Unlock()

	if cb != nil {
		cb(pos)
	}
}

// Move records a pointer position and restarts the window.
func (d *Detector) Move(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pos = Point{X: x, Y: y}
	d.idle = false
	d.arm()
}

// Idle reports whether the pointer has been still for the full window.
func (d *Detector) Idle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.idle
}

// Position returns the last recorded pointer position.
func (d *Detector) Position() Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// Stop cancels the pending window. Further moves are ignored.
func (d *Detector) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
}
