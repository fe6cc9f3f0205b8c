// Package lifetime constructs process-wide singletons exactly once and
// tears them down in an explicit, library-owned order.
//
// The package exists because independent process-wide objects have no
// usable destruction order of their own: anything that must survive until
// late shutdown (an error-reporting handler, a platform adaptation point)
// cannot rely on being torn down after its dependents. Instead, dependents
// declare the requirement explicitly by acquiring a Guard:
//
//	g := lifetime.GuardFor[ConsoleHandler]()
//
// The first guard request for a type constructs its singleton; every
// request, first or later, returns a zero-size token whose existence proves
// the singleton is available and will not be destroyed before the
// registry's shutdown sequence reaches it.
//
// Singletons registered later are destroyed earlier. Registration order is
// construction-completion order, so a singleton constructed from within
// another singleton's constructor is recorded first and outlives its
// dependent. Teardown is triggered exactly once per process, by whoever
// owns shutdown, via Default.Teardown().
//
// Two optional hooks tie a type into the lifecycle: Initializer.Init runs
// once right after zero-value construction, and io.Closer.Close runs during
// teardown (errors are logged, never propagated).
//
// Construction is the one operation that can fail, and it fails fatally: a
// panic out of Init propagates, because the guarantee this package provides
// (a valid singleton is always available) cannot be downgraded to an error
// return.
package lifetime
