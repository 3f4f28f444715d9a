// Package lazy provides single-construction, process-lifetime references.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Ref is a lazily constructed, shared reference to a value of type T.
//
// The first Get runs the build function; every later Get returns the same
// value. The steady-state read is a single atomic flag check with no lock
// involved, and the flag is set only after the build has returned, so a
// goroutine that observes it set also observes the fully constructed
// value. A failed build leaves the Ref empty: the error goes to the caller
// whose attempt failed, and subsequent callers run the build again.
//
// Prefer passing values to their consumers explicitly; a Ref is for the
// places where call-site injection is impractical, such as package-level
// defaults.
type Ref[T any] struct {
	ready atomic.Bool
	mu    sync.Mutex
	build func() (T, error)
	value T
}

// NewRef returns a Ref that constructs its value with build on first use.
// It panics if build is nil.
func NewRef[T any](build func() (T, error)) *Ref[T] {
	if build == nil {
		panic("lazy: nil build function")
	}
	return &Ref[T]{build: build}
}

// Get returns the shared value, constructing it if no previous call has
// succeeded. Concurrent first-time callers block until the winning
// construction finishes and then all receive the identical value; after
// that, Get never blocks and never takes the lock.
func (r *Ref[T]) Get() (T, error) {
	if r.ready.Load() {
		return r.value, nil
	}
	// Outlined slow path keeps the check above inlinable.
	return r.getSlow()
}

func (r *Ref[T]) getSlow() (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A contending caller may have finished the build while we waited.
	if r.ready.Load() {
		return r.value, nil
	}

	v, err := r.build()
	if err != nil {
		var zero T
		return zero, err
	}
	r.value = v

	// Publish after the value is fully in place: a fast-path Load that
	// observes true is then guaranteed to observe the value as well.
	r.ready.Store(true)
	return r.value, nil
}

// MustGet is Get for build functions that cannot fail.
// It panics if the build returns an error.
func (r *Ref[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic("lazy: build failed: " + err.Error())
	}
	return v
}

// Ready reports whether a value has been published. It never blocks.
func (r *Ref[T]) Ready() bool {
	return r.ready.Load()
}
