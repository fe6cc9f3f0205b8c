package callback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmesh/plinth/callback"
)

type origin struct{ hits int }

type attachment struct{ seen []*origin }

// TestNew_InvokesWithOrigin verifies a context-free callback receives the
// origin it was invoked with.
func TestNew_InvokesWithOrigin(t *testing.T) {
	t.Parallel()

	cb := callback.New(func(o *origin) { o.hits++ })
	require.True(t, cb.IsValid())

	var o origin
	cb.Invoke(&o)
	cb.Invoke(&o)
	assert.Equal(t, 2, o.hits)
}

// TestNewWithContext_BindsContext verifies the bound context pointer is
// handed to every invocation.
func TestNewWithContext_BindsContext(t *testing.T) {
	t.Parallel()

	var ctx attachment
	cb := callback.NewWithContext(func(o *origin, c *attachment) {
		c.seen = append(c.seen, o)
	}, &ctx)
	require.True(t, cb.IsValid())

	var a, b origin
	cb.Invoke(&a)
	cb.Invoke(&b)
	assert.Equal(t, []*origin{&a, &b}, ctx.seen)
}

// TestCallback_NilFunctionIsInvalid verifies nil functions yield invalid,
// no-op callbacks instead of panics.
func TestCallback_NilFunctionIsInvalid(t *testing.T) {
	t.Parallel()

	cb := callback.New[origin](nil)
	assert.False(t, cb.IsValid())
	cb.Invoke(&origin{}) // must not panic

	withCtx := callback.NewWithContext[origin, attachment](nil, &attachment{})
	assert.False(t, withCtx.IsValid())
	withCtx.Invoke(&origin{})
}

// TestCallback_ZeroValueIsInvalid verifies the zero value invokes to nothing.
func TestCallback_ZeroValueIsInvalid(t *testing.T) {
	t.Parallel()

	var cb callback.Callback[origin, callback.None]
	assert.False(t, cb.IsValid())
	cb.Invoke(&origin{})
}

// TestErase_PreservesInvocation verifies the erased form still reaches the
// typed function when handed the right origin type.
func TestErase_PreservesInvocation(t *testing.T) {
	t.Parallel()

	var o origin
	e := callback.Erase(callback.New(func(o *origin) { o.hits++ }))
	require.True(t, e.IsValid())

	e.Invoke(&o)
	assert.Equal(t, 1, o.hits)
}

// TestErase_WrongOriginIgnored verifies an erased callback ignores origins
// of a different type instead of panicking.
func TestErase_WrongOriginIgnored(t *testing.T) {
	t.Parallel()

	var o origin
	e := callback.Erase(callback.New(func(o *origin) { o.hits++ }))

	e.Invoke("not an origin")
	e.Invoke(nil)
	assert.Equal(t, 0, o.hits)
}

// TestErase_InvalidErasesToNoop verifies invalid callbacks erase cleanly.
func TestErase_InvalidErasesToNoop(t *testing.T) {
	t.Parallel()

	e := callback.Erase(callback.New[origin](nil))
	assert.False(t, e.IsValid())
	e.Invoke(&origin{})
}
