package handler

import (
	"os"

	"github.com/rs/zerolog"
)

// log receives the diagnostics emitted by LogHooks.
var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "handler").Logger()

// Hooks is the policy a handler configuration supplies for substitution
// attempts after Finalize.
//
// The policy is a type parameter of Handler, so dispatch is resolved at
// compile time. Policy types must be usable at their zero value; the
// provided policies are zero-size structs.
type Hooks[I any] interface {
	// OnSetAfterFinalize is called whenever Set or Reset is attempted on a
	// finalized handler, with the unchanged current instance and the
	// instance the caller attempted to install.
	OnSetAfterFinalize(current, attempted I)
}

// LogHooks logs a warning for every substitution attempt after Finalize.
// This is the policy to reach for unless the attempt must stay silent.
type LogHooks[I any] struct{}

// OnSetAfterFinalize implements Hooks.
func (LogHooks[I]) OnSetAfterFinalize(current, attempted I) {
	log.Warn().
		Type("current", current).
		Type("attempted", attempted).
		Msg("handler substitution after finalize ignored")
}

// NoopHooks silently ignores substitution attempts after Finalize.
type NoopHooks[I any] struct{}

// OnSetAfterFinalize implements Hooks.
func (NoopHooks[I]) OnSetAfterFinalize(current, attempted I) {}
