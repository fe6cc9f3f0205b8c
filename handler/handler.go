package handler

import (
	"reflect"
	"strconv"
	"sync"

	"go.uber.org/atomic"

	"github.com/ironmesh/plinth/lifetime"
)

// InstallTypeError reports an attempt to install a registry instance whose
// type does not implement the handler's interface. Go cannot reject this at
// compile time for types with pointer receivers, so Set and For check
// defensively and panic with this error: it is a programmer contract
// violation, not a runtime condition to handle.
type InstallTypeError struct {
	// Instance is the concrete singleton type that was offered.
	Instance reflect.Type

	// Interface is the handler interface it fails to implement.
	Interface reflect.Type
}

// Error implements the error interface.
func (e InstallTypeError) Error() string {
	// Example: handler: "*custom.Thing" does not implement "report.Handler"
	return "handler: " + strconv.Quote(e.Instance.String()) +
		" does not implement " + strconv.Quote(e.Interface.String())
}

// Handler is a singleton holder for one (Interface, Default, Hooks)
// configuration. It owns the lazily constructed Default instance (through a
// lifetime guard) and a pointer to whichever instance, default or external,
// is presently active.
//
// Obtain instances exclusively through For; the zero value is not usable.
type Handler[I Activatable, D any, H Hooks[I]] struct {
	// mu serializes Set, Reset and Finalize. Get never takes it.
	mu      sync.Mutex
	final   atomic.Bool
	current atomic.Pointer[I]
}

// For returns the handler singleton for the given configuration,
// constructing it (and, through its guard, the Default instance) on first
// use. Safe for concurrent first access: exactly one construction happens.
func For[I Activatable, D any, H Hooks[I]]() *Handler[I, D, H] {
	return lifetime.Instance[Handler[I, D, H]]()
}

// Init implements lifetime.Initializer. It acquires the Default guard while
// the handler's own construction is still in flight, so the registry
// records the Default first and tears the handler down before it.
func (h *Handler[I, D, H]) Init() {
	def := instanceAs[I, D]()
	h.current.Store(&def)
}

// Get returns the presently active instance.
//
// Get is a single atomic load: it never blocks, never fails and never
// allocates, and may be called from any goroutine at any time between the
// handler's first use and registry teardown.
func (h *Handler[I, D, H]) Get() I {
	return *h.current.Load()
}

// Set installs T's singleton as the active instance of h and returns the
// previous instance so the caller can optionally restore it.
//
// The guard is the caller's proof that T's singleton is constructed and
// registry-owned; it carries no data. T's singleton must implement I, a
// mismatch panics with InstallTypeError.
//
// Once h is finalized, Set no longer mutates anything: the configured Hooks
// policy observes (current, attempted) and the unchanged current instance
// is returned.
func Set[T any, I Activatable, D any, H Hooks[I]](h *Handler[I, D, H], _ lifetime.Guard[T]) I {
	return h.install(instanceAs[I, T]())
}

// Reset restores the Default instance as active, subject to the same
// finalize diversion as Set. It returns the previous instance.
func (h *Handler[I, D, H]) Reset() I {
	return h.install(instanceAs[I, D]())
}

// Finalize freezes the active instance for the remaining process lifetime.
// Idempotent. Subsequent Set and Reset calls route through the Hooks
// policy instead of mutating state; Finalize wins any race with a
// concurrent Set.
func (h *Handler[I, D, H]) Finalize() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.final.Store(true)
}

// Finalized reports whether Finalize has been called.
func (h *Handler[I, D, H]) Finalized() bool {
	return h.final.Load()
}

// Guard returns a lifetime guard for this handler singleton itself, letting
// other process-wide objects that need the handler for their whole lifetime
// pin the teardown order.
func (h *Handler[I, D, H]) Guard() lifetime.Guard[Handler[I, D, H]] {
	return lifetime.GuardFor[Handler[I, D, H]]()
}

// Close implements io.Closer for registry teardown: a handler reached by
// the shutdown sequence locks itself against late substitution.
func (h *Handler[I, D, H]) Close() error {
	h.Finalize()
	return nil
}

// install swaps the active instance under the mutator lock.
func (h *Handler[I, D, H]) install(next I) I {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := *h.current.Load()
	if h.final.Load() {
		var hooks H
		hooks.OnSetAfterFinalize(prev, next)
		return prev
	}
	h.current.Store(&next)
	return prev
}

// instanceAs fetches T's singleton and checks it implements I.
func instanceAs[I Activatable, T any]() I {
	inst := lifetime.Instance[T]()
	i, ok := any(inst).(I)
	if !ok {
		panic(InstallTypeError{
			Instance:  reflect.TypeOf((**T)(nil)).Elem(),
			Interface: reflect.TypeOf((*I)(nil)).Elem(),
		})
	}
	return i
}
