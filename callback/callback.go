// Package callback provides the attachment representation notification
// sources store: a user function bound, optionally, to an opaque context
// value.
//
// The package is deliberately plumbing-only. It does not dispatch, queue or
// multiplex anything; it gives event sources one stable value type to hold
// on to, regardless of whether the user attached a plain function or a
// function plus context, and a type-erased form so heterogeneous
// attachments can share storage.
package callback

// None is the context type of callbacks attached without one.
type None struct{}

// Callback pairs a user function with an optional bound context pointer.
//
// O is the origin type the notification concerns (the object the event
// fired on); C is the user's context type, None when absent. The zero
// value is invalid and invokes to nothing.
type Callback[O any, C any] struct {
	fn  func(*O, *C)
	ctx *C
}

// New returns a Callback wrapping a context-free function.
func New[O any](fn func(*O)) Callback[O, None] {
	if fn == nil {
		return Callback[O, None]{}
	}
	return Callback[O, None]{fn: func(origin *O, _ *None) { fn(origin) }}
}

// NewWithContext returns a Callback binding fn to ctx. The caller keeps
// ownership of ctx and must keep it alive while the callback is attached.
func NewWithContext[O any, C any](fn func(*O, *C), ctx *C) Callback[O, C] {
	if fn == nil {
		return Callback[O, C]{}
	}
	return Callback[O, C]{fn: fn, ctx: ctx}
}

// IsValid reports whether the callback holds a function.
func (c Callback[O, C]) IsValid() bool { return c.fn != nil }

// Invoke calls the bound function with origin and the bound context.
// Invoking an invalid callback does nothing.
func (c Callback[O, C]) Invoke(origin *O) {
	if c.fn == nil {
		return
	}
	c.fn(origin, c.ctx)
}

// Erased is the type-erased form of a Callback, suitable for storage next
// to attachments of unrelated origin types. The zero value invokes to
// nothing.
type Erased struct {
	call func(origin any)
}

// Erase converts a typed Callback into its erased form. The erased call
// expects the origin as *O and ignores anything else, mirroring the typed
// contract; invalid callbacks erase to a no-op.
func Erase[O any, C any](c Callback[O, C]) Erased {
	if !c.IsValid() {
		return Erased{}
	}
	return Erased{call: func(origin any) {
		if o, ok := origin.(*O); ok {
			c.Invoke(o)
		}
	}}
}

// IsValid reports whether the erased callback holds a function.
func (e Erased) IsValid() bool { return e.call != nil }

// Invoke calls the underlying callback if origin has the attached type.
func (e Erased) Invoke(origin any) {
	if e.call == nil {
		return
	}
	e.call(origin)
}
