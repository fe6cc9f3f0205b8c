// Package handler implements a runtime-pluggable singleton: a holder that
// always exposes one valid implementation of an interface, starting with a
// lazily constructed default and allowing configuration code to swap in an
// externally owned implementation at runtime.
//
// A handler configuration is a triple of type parameters:
//
//   - Interface, the capability the handler exposes. It must embed
//     Activatable so generic consumers can suspend a handler's effect
//     without removing it.
//   - Default, the concrete built-in implementation, constructed on first
//     demand through the lifetime registry.
//   - Hooks, the policy invoked instead of mutation once the handler is
//     finalized. Resolved at compile time; no virtual dispatch sits on the
//     read path.
//
// Typical wiring, here for an error-reporting capability:
//
//	h := handler.For[ErrorHandler, ConsoleHandler, handler.LogHooks[ErrorHandler]]()
//
//	h.Get()                                       // console handler
//	prev := handler.Set(h, lifetime.GuardFor[CustomHandler]())
//	h.Get()                                       // custom handler
//	h.Finalize()
//	handler.Set(h, lifetime.GuardFor[OtherHandler]()) // diverted to Hooks
//
// Get is a single atomic load: no locks, no allocation, safe from any
// number of goroutines, including termination-path code. Set, Reset and
// Finalize serialize on an internal mutex; they are configuration-time
// operations and never touch the read path. Finalize wins any race with a
// concurrent Set: a Set that enters after Finalize is diverted to the hook,
// there is no torn intermediate state.
//
// The guard argument to Set is the caller's proof obligation: it shows the
// installed instance is registry-owned and will not be torn down while it
// can still be read. Handlers are obtained exclusively through For; the
// zero value of Handler is not usable.
package handler
