// Package platform holds the thin OS compatibility shims the middleware
// needs: translation between process-local descriptors and native handles,
// and sysconf-style queries. Ordinary portability plumbing, no invariants
// beyond the table bookkeeping.
package platform

import (
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrUnknownDescriptor is returned when a descriptor is not present in a
// HandleTable.
var ErrUnknownDescriptor = errors.New("platform: unknown descriptor")

// CloseError reports a failed Close with the descriptor attached.
type CloseError struct {
	FD  int
	Err error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	// Example: platform: close fd 7: bad file descriptor
	return "platform: close fd " + strconv.Itoa(e.FD) + ": " + e.Err.Error()
}

// Unwrap exposes the underlying errno.
func (e CloseError) Unwrap() error { return e.Err }

// HandleTable maps small process-local integer descriptors to native OS
// handles, for the parts of the middleware that traffic in descriptors
// while the underlying platform objects are opaque handles.
//
// Removed slots are reused by later Adds. Safe for concurrent use.
type HandleTable struct {
	mu      sync.RWMutex
	handles []uintptr
	used    []bool
}

// Add stores a native handle and returns its descriptor.
func (t *HandleTable) Add(h uintptr) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, inUse := range t.used {
		if !inUse {
			t.handles[i] = h
			t.used[i] = true
			return i
		}
	}
	t.handles = append(t.handles, h)
	t.used = append(t.used, true)
	return len(t.handles) - 1
}

// Get translates a descriptor back to its native handle.
func (t *HandleTable) Get(fd int) (uintptr, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if fd < 0 || fd >= len(t.used) || !t.used[fd] {
		return 0, ErrUnknownDescriptor
	}
	return t.handles[fd], nil
}

// Remove frees a descriptor for reuse. Removing an unknown descriptor is a
// no-op, matching close-after-close semantics.
func (t *HandleTable) Remove(fd int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if fd < 0 || fd >= len(t.used) {
		return
	}
	t.handles[fd] = 0
	t.used[fd] = false
}

// Len reports the number of live descriptors.
func (t *HandleTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, inUse := range t.used {
		if inUse {
			n++
		}
	}
	return n
}

// PageSize returns the system memory page size, the granularity all shared
// memory segment sizes are rounded to.
func PageSize() int { return unix.Getpagesize() }

// Close closes an OS file descriptor, wrapping any errno in a CloseError.
func Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return CloseError{FD: fd, Err: err}
	}
	return nil
}
