package lifetime

// Guard is a capability token for the process-wide singleton of T.
//
// A Guard carries no state and is freely copyable. Its meaning is entirely
// in its type: any code path that obtained (or was handed) a Guard[T] may
// assume T's singleton is constructed and will not be torn down before the
// registry's shutdown sequence reaches it.
//
// Guards always refer to the Default registry. Auxiliary registries (see
// NewRegistry) manage instances without issuing guards.
type Guard[T any] struct{}

// Initializer is the optional construction hook for singleton types.
//
// When a type's singleton is first guarded, the registry allocates the zero
// value and, if the type implements Initializer, calls Init exactly once
// before the instance becomes observable. A panic out of Init is fatal and
// propagates to the caller that triggered construction.
type Initializer interface {
	Init()
}

// GuardFor returns a lifetime guard for T's singleton, constructing and
// registering it on first request.
//
// GuardFor is idempotent and safe for concurrent use: exactly one caller
// constructs, all others observe the constructed instance.
func GuardFor[T any]() Guard[T] {
	InstanceIn[T](Default)
	return Guard[T]{}
}

// Instance returns T's singleton, implying GuardFor[T].
//
// The returned pointer stays valid until Default.Teardown() runs.
func Instance[T any]() *T {
	return InstanceIn[T](Default)
}
