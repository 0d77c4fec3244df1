// Package host provides the mutation and scheduling substrate for tree
// processing: a single designated mutation goroutine plus a read/write gate.
// Read phases run on the caller's goroutine and may overlap each other;
// mutation work is handed to the designated goroutine via message passing,
// and individual mutations acquire the exclusive side of the gate so a
// committed change is visible before the acquisition returns.
package host

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when work is submitted after Close.
var ErrClosed = errors.New("host: mutation context closed")

type task struct {
	fn   func() error
	done chan error
}

// Host is the substrate for one or more processing invocations over trees.
type Host struct {
	mu    sync.RWMutex
	tasks chan task
	quit  chan struct{}
	once  sync.Once
}

// New starts the designated mutation goroutine.
func New() *Host {
	h := &Host{
		tasks: make(chan task),
		quit:  make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Host) loop() {
	for {
		select {
		case t := <-h.tasks:
			t.done <- t.fn()
		case <-h.quit:
			return
		}
	}
}

// Close shuts down the mutation goroutine. Pending submissions fail with
// ErrClosed.
func (h *Host) Close() {
	h.once.Do(func() { close(h.quit) })
}

// Read runs fn on the caller's goroutine while holding the shared side of
// the gate. Readers may overlap; no exclusive mutation runs concurrently
// with them.
func (h *Host) Read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fn()
}

// OnMutationContext hands fn to the designated mutation goroutine and waits
// for completion. All tree mutation must happen on this context.
func (h *Host) OnMutationContext(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	select {
	case h.tasks <- task{fn: fn, done: done}:
	case <-h.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Exclusive acquires the exclusive side of the gate around fn. The change fn
// makes is committed before Exclusive returns. Intended to be called from
// within a mutation-context task.
func (h *Host) Exclusive(fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn()
}
