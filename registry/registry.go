package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fenwick/cortex/resolver"
)

var (
	// ErrCancelled may be returned by a Handler to explicitly signal
	// that it observed cancellation originating from user-level logic
	// rather than from the attempt timeout or worker shutdown. The
	// Executor maps it to outcome command.Cancelled and routes the
	// command through the cancellation path, including its
	// on-cancellation chain.
	ErrCancelled = errors.New("handler: cancelled")

	// ErrAbandon may be returned by a Handler to force the command
	// straight to its terminal Failed state on this attempt, skipping
	// any remaining retries. It is the completed form of a sentinel the
	// teacher codebase's own test suite assumed but never defined.
	ErrAbandon = errors.New("handler: abandon")
)

// Handler processes a command's deserialized input under a
// cancellation-bearing context and returns an optional output blob.
//
// The context is canceled when the attempt's timeout elapses, the
// worker begins shutting down, or the heartbeat finds the lease lost.
// A returned nil error means success. The
// sentinels ErrCancelled and ErrAbandon carry special meaning; any
// other non-nil error is classified as an ordinary failure.
//
// Handlers must be idempotent: cortex provides at-least-once delivery,
// and a handler may run more than once for the same command if a lease
// is lost mid-attempt.
type Handler func(ctx context.Context, input *string) (*string, error)

// Successor describes one command to enqueue as a consequence of
// another command reaching a particular terminal outcome.
//
// Input derives the successor's input blob from the parent command's
// final output (nil on paths where there is no output, such as
// cancellation or failure). A nil Input function enqueues the
// successor with a nil input.
type Successor struct {
	Name    string
	Target  string
	Timeout time.Duration
	Retries int32
	Delay   time.Duration
	Input   func(output *string) *string
}

// Chain bundles the three successor lists a command's terminal
// transition may enqueue. It is the data-attribute replacement for the
// virtual on_success/on_failure/on_cancellation hooks of the source
// design (see design notes): the Executor reads these collections
// directly rather than dispatching to overridden methods.
type Chain struct {
	OnSuccess      []Successor
	OnFailure      []Successor
	OnCancellation []Successor
}

// FailureAsCancellation returns a copy of c with OnCancellation set to
// OnFailure whenever OnCancellation is empty. This is the builder
// helper spec's design notes call for in place of an inherited default:
// most commands want the same cleanup/compensation successors whether
// they failed or were cancelled, and only need to say so once.
func (c Chain) FailureAsCancellation() Chain {
	if len(c.OnCancellation) == 0 {
		c.OnCancellation = c.OnFailure
	}
	return c
}

// Definition bundles a Handler with the Chain that governs its
// terminal transitions.
type Definition struct {
	Handler Handler
	Chain   Chain
}

// Registry resolves a command name to a Definition. The core treats a
// Registry as opaque: it only ever calls Lookup.
type Registry interface {
	// Lookup returns the Definition registered for name. The second
	// return value is false if no handler is registered, in which case
	// the Executor classifies the attempt as command.NotFound without
	// calling anything.
	Lookup(name string) (*Definition, bool)
}

// MapRegistry is a simple in-memory Registry backed by a map, safe for
// concurrent Register/Lookup calls.
type MapRegistry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewMapRegistry creates an empty MapRegistry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{defs: make(map[string]Definition)}
}

// Register associates name with def, overwriting any previous
// registration for that name.
func (r *MapRegistry) Register(name string, def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[name] = def
}

// RegisterFor registers def under the name resolver.Resolve derives
// from v and override, using the same naming convention applied to
// commands at enqueue time.
func (r *MapRegistry) RegisterFor(v any, override string, def Definition) {
	r.Register(resolver.Resolve(v, override), def)
}

// Lookup implements Registry.
func (r *MapRegistry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	if !ok {
		return nil, false
	}
	return &def, true
}
