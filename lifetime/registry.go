package lifetime

import (
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// log receives teardown diagnostics. Singleton destruction happens on the
// shutdown path where nobody is left to handle an error return.
var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "lifetime").Logger()

// Default is the process-wide registry backing GuardFor and Instance.
var Default = NewRegistry()

// Registry records singleton instances in construction-completion order and
// destroys them in strict reverse on Teardown.
//
// Most code uses the package-level functions against Default. Separate
// registries exist for embedders that scope a singleton set to a subsystem,
// and for tests that need isolated teardown.
type Registry struct {
	// mu guards the entry map and the completion-order slice. It is never
	// held while a constructor runs, so constructors may acquire further
	// singletons from the same registry.
	mu      sync.Mutex
	entries map[reflect.Type]*entry
	order   []*entry
}

// entry is the registration record for one singleton type.
type entry struct {
	once     sync.Once
	typ      reflect.Type
	instance any // *T, written once inside once.Do
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[reflect.Type]*entry{}}
}

// InstanceIn returns T's singleton in r, constructing and registering it on
// first request.
//
// Construction runs outside the registry lock. A constructor may therefore
// request further singletons from r; those complete first, register first,
// and consequently outlive their dependent. A constructor must not request
// its own type, directly or through a cycle.
func InstanceIn[T any](r *Registry) *T {
	e := r.entryFor(reflect.TypeOf((*T)(nil)).Elem())
	e.once.Do(func() {
		inst := new(T)
		if init, ok := any(inst).(Initializer); ok {
			init.Init()
		}
		e.instance = inst
		r.register(e)
	})
	return e.instance.(*T)
}

// entryFor returns the entry for t, creating it if absent.
func (r *Registry) entryFor(t reflect.Type) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[t]
	if !ok {
		e = &entry{typ: t}
		r.entries[t] = e
	}
	return e
}

// register appends a fully constructed entry to the teardown order.
func (r *Registry) register(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, e)
}

// Len returns the number of constructed singletons.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Types returns a snapshot of the constructed singleton types in
// construction-completion order. Intended for diagnostics.
func (r *Registry) Types() []reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]reflect.Type, len(r.order))
	for i, e := range r.order {
		types[i] = e.typ
	}
	return types
}

// Teardown destroys all registered singletons in reverse of their
// construction-completion order, then leaves the registry empty.
//
// Instances implementing io.Closer are closed; Close errors are logged and
// do not stop the sequence. Guards obtained before Teardown must not be
// used to reach instances afterwards; calling Teardown is the shutdown
// owner's assertion that no such use remains.
func (r *Registry) Teardown() {
	r.mu.Lock()
	order := r.order
	r.order = nil
	r.entries = map[reflect.Type]*entry{}
	r.mu.Unlock()

	for i := len(order) - 1; i >= 0; i-- {
		e := order[i]
		c, ok := e.instance.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Stringer("type", e.typ).Msg("singleton close failed during teardown")
		}
	}
}
