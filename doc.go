// Package plinth is the lifetime and identity management core for a
// shared-memory IPC middleware.
//
// It provides the substrate that cross-cutting, process-wide behaviors
// (error reporting strategies, platform adaptation points and similar
// singleton handlers) are built on:
//
//   - lifetime: lazily constructs process-wide singletons exactly once and
//     tears them down in an explicit, library-owned order. Holding a
//     lifetime.Guard[T] proves T's singleton exists and will outlive the
//     guard holder's use of it.
//
//   - handler: a runtime-pluggable singleton holder. It owns a lazily
//     constructed default instance, exposes the currently active instance
//     through a lock-free Get, lets configuration code swap in an externally
//     owned implementation, and can be finalized before shutdown so that
//     late swap attempts are diverted to a hook instead of mutating state.
//
//   - report: the error-reporting handler domain built on the two packages
//     above, with a console default.
//
//   - callback: the typed callback-attachment representation notification
//     sources store.
//
//   - platform: thin descriptor-translation and sysconf-style shims.
//
// Wiring stays structural: every knob is a type parameter resolved at
// compile time; there are no runtime configuration flags.
//
// Start with the handler package documentation and the runnable example
// under examples/errorreporting.
package plinth
