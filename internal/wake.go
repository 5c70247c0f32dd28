package internal

import "sync"

// Wake is a one-shot, re-armable notification signal. Signal closes the
// current channel (waking anyone selecting on it) and immediately
// replaces it with a fresh one, so the next waiter blocks until the
// next Signal.
//
// Wake is the only piece of shared in-process mutable state in cortex's
// core: everything else is coordinated through storage. It exists so a
// local Enqueue call can interrupt a Worker's idle sleep without the
// Worker polling a flag.
type Wake struct {
	mu sync.Mutex
	ch chan struct{}
}

// NewWake returns an armed Wake.
func NewWake() *Wake {
	return &Wake{ch: make(chan struct{})}
}

// C returns the channel to select on. It is safe to call concurrently
// with Signal; the returned channel is valid until the next time it
// closes.
func (w *Wake) C() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ch
}

// Signal wakes any current waiter and arms a fresh channel for the
// next one.
func (w *Wake) Signal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	close(w.ch)
	w.ch = make(chan struct{})
}
