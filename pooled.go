package objpool

import (
	"fmt"
	"runtime"
	"weak"
)

// Pooled is an object borrowed from a Pool.
//
// Release resets the object and returns it to the pool if the pool still
// exists and has room; otherwise the object is left to the garbage collector.
// Detach takes the object out of circulation instead. After either call the
// handle is empty: Release becomes a no-op and every other method panics with
// ErrDetached.
//
// A Pooled value is not safe for concurrent use, and the pointer returned by
// Value must not be kept after the handle is released. With WithReclaim, it
// must also not outlive the handle itself: an unreachable handle counts as
// released.
type Pooled[T any] struct {
	obj     *T // nil once released or detached
	pool    weak.Pointer[store[T]]
	cleanup runtime.Cleanup
	tracked bool
}

// Value returns the borrowed object. The pointer is only valid while v is
// reachable and not yet released or detached; in a pool built with
// WithReclaim, keep v alive (runtime.KeepAlive(v)) until the last use of the
// pointer.
func (v *Pooled[T]) Value() *T {
	return v.must()
}

// Detached reports whether the handle has been released or detached
func (v *Pooled[T]) Detached() bool {
	return v.obj == nil
}

// Release resets the object and returns it to its pool. It is a no-op on an
// empty handle, so it can always be deferred:
//
//	buf := pool.Take()
//	defer buf.Release()
func (v *Pooled[T]) Release() {
	obj := v.obj
	if obj == nil {
		return
	}
	v.obj = nil
	v.untrack()

	s := v.pool.Value()
	if s == nil {
		return
	}
	s.inUse.Add(-1)
	s.put(obj)
}

// Detach removes the object from the pool for good and returns it. The pool
// is never contacted about it again.
func (v *Pooled[T]) Detach() *T {
	obj := v.must()
	v.obj = nil
	v.untrack()

	if s := v.pool.Value(); s != nil {
		s.inUse.Add(-1)
		s.stats.detached.Add(1)
	}

	return obj
}

// Pool returns a handle to the pool the object came from. Objects can outlive
// their pool, in which case it returns false.
func (v *Pooled[T]) Pool() (*Pool[T], bool) {
	s := v.pool.Value()
	if s == nil {
		return nil, false
	}
	return &Pool[T]{s: s}, true
}

// Format formats the borrowed object as if it were passed to fmt directly.
func (v *Pooled[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.formatArg())
}

// String returns the %v rendering of the borrowed object
func (v *Pooled[T]) String() string {
	return fmt.Sprint(v.formatArg())
}

// formatArg picks the pointer when it carries formatting methods, the value
// otherwise.
func (v *Pooled[T]) formatArg() any {
	obj := v.must()
	switch any(obj).(type) {
	case fmt.Formatter, fmt.Stringer, fmt.GoStringer, error:
		return obj
	}
	return *obj
}

func (v *Pooled[T]) must() *T {
	if v.obj == nil {
		panic(ErrDetached)
	}
	return v.obj
}

func (v *Pooled[T]) untrack() {
	if v.tracked {
		v.cleanup.Stop()
		v.tracked = false
	}
}
