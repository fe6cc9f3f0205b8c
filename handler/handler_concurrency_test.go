package handler_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmesh/plinth/handler"
	"github.com/ironmesh/plinth/lifetime"
)

type stressDefault struct{ handler.Activation }

func (d *stressDefault) Tag() string { return "default" }

// TestConcurrentGetWhileSwapping hammers Get from many readers while
// writers alternate Set and Reset. Every observed instance must be one that
// was validly installed; the race detector covers the memory-ordering side.
func TestConcurrentGetWhileSwapping(t *testing.T) {
	t.Parallel()

	h := handler.For[probeIface, stressDefault, noopHooks]()
	def := h.Get()
	custom := lifetime.Instance[customProbe]()

	valid := map[probeIface]bool{
		def: true,
		any(custom).(probeIface): true,
	}

	var wg sync.WaitGroup
	readers := runtime.GOMAXPROCS(0) * 4

	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				got := h.Get()
				if !valid[got] {
					t.Errorf("observed instance that was never installed: %q", got.Tag())
					return
				}
			}
		}()
	}

	// Writers (rare in production, hammered here)
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = handler.Set(h, lifetime.GuardFor[customProbe]())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = h.Reset()
		}
	}()

	wg.Wait()

	assert.True(t, valid[h.Get()])
}

type raceFinalizeDefault struct{ handler.Activation }

func (d *raceFinalizeDefault) Tag() string { return "default" }

// TestFinalizeWinsRaceWithSet verifies the documented race resolution:
// once Finalize returns, no later Set mutates state, regardless of how many
// sets were in flight around the transition.
func TestFinalizeWinsRaceWithSet(t *testing.T) {
	t.Parallel()

	h := handler.For[probeIface, raceFinalizeDefault, noopHooks]()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = handler.Set(h, lifetime.GuardFor[customProbe]())
			_ = h.Reset()
		}
	}()
	go func() {
		defer wg.Done()
		h.Finalize()
	}()
	wg.Wait()

	require.True(t, h.Finalized())

	// Whatever won the transition window, the state is now frozen.
	frozen := h.Get()
	_ = handler.Set(h, lifetime.GuardFor[secondProbe]())
	_ = h.Reset()
	assert.Same(t, frozen, h.Get())
}
