// Package report is the error-reporting handler domain of the middleware.
//
// Every delivery path reports failures through the process-wide Handler
// rather than threading error channels through hot code. The built-in
// ConsoleHandler writes structured records to stderr; integrators swap in
// their own strategy at startup and seal the choice before shutdown:
//
//	_ = lifetime.GuardFor[myHandler]()    // construct + pin the custom handler
//	prev := report.Install(lifetime.GuardFor[myHandler]())
//	defer report.Restore()
//
//	report.Seal()                         // from now on, installs are diverted
//
// Reporting itself goes through the package shortcuts:
//
//	report.Error(err)
//	report.Errorf("segment %q rejected: %v", name, err)
package report

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironmesh/plinth/handler"
	"github.com/ironmesh/plinth/lifetime"
)

// Handler is the error-reporting capability.
//
// Implementations must be safe for concurrent use from any goroutine,
// including termination-path code. The embedded activation switch is
// honored by implementations: a deactivated handler swallows reports.
type Handler interface {
	handler.Activatable

	// Report records a failure. A nil error is ignored.
	Report(err error)

	// Reportf records a formatted failure message.
	Reportf(format string, args ...any)
}

// ConsoleHandler is the default Handler. It writes human-readable
// structured records to Out (stderr when left nil).
type ConsoleHandler struct {
	handler.Activation

	// Out overrides the destination when set before Init. Zero-value
	// construction through the lifetime registry leaves it nil.
	Out io.Writer

	log zerolog.Logger
}

// Init implements lifetime.Initializer.
func (c *ConsoleHandler) Init() {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	c.log = zerolog.New(w).With().Timestamp().Str("component", "report").Logger()
}

// Report implements Handler.
func (c *ConsoleHandler) Report(err error) {
	if err == nil || !c.IsActive() {
		return
	}
	c.log.Error().Msg(err.Error())
}

// Reportf implements Handler.
func (c *ConsoleHandler) Reportf(format string, args ...any) {
	if !c.IsActive() {
		return
	}
	c.log.Error().Msgf(format, args...)
}

// hooks is the substitution-after-seal policy: log and ignore.
type hooks = handler.LogHooks[Handler]

func hdl() *handler.Handler[Handler, ConsoleHandler, hooks] {
	return handler.For[Handler, ConsoleHandler, hooks]()
}

// Current returns the presently active error handler. Lock-free; safe on
// every reporting path.
func Current() Handler { return hdl().Get() }

// Install makes T's singleton the active error handler and returns the
// previous one. The guard proves T's singleton is constructed and pinned.
// After Seal, Install is diverted to the hook and the active handler is
// unchanged.
func Install[T any](g lifetime.Guard[T]) Handler { return handler.Set(hdl(), g) }

// Restore reinstates the ConsoleHandler default and returns the previous
// handler. Subject to the same Seal diversion as Install.
func Restore() Handler { return hdl().Reset() }

// Seal locks the active handler against further substitution for the
// remaining process lifetime. Idempotent.
func Seal() { hdl().Finalize() }

// Sealed reports whether Seal has been called.
func Sealed() bool { return hdl().Finalized() }

// Guard returns a lifetime guard on the reporting handler singleton, for
// process-wide objects that report errors throughout their own teardown.
func Guard() lifetime.Guard[handler.Handler[Handler, ConsoleHandler, hooks]] {
	return hdl().Guard()
}

// Error reports err through the active handler.
func Error(err error) { Current().Report(err) }

// Errorf reports a formatted message through the active handler.
func Errorf(format string, args ...any) { Current().Reportf(format, args...) }
