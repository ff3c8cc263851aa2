// Package objpool implements a bounded, thread-safe object pool whose objects
// find their own way back.
//
// Take hands out a *Pooled[T]; releasing it resets the object (see package
// reset) and pushes it back into the pool's fixed-size lock-free store:
//
//	pool := objpool.New[reset.Bytes](64)
//
//	buf := pool.Take()
//	defer buf.Release()
//	buf.Value().WriteString("hello")
//
// Returns are best-effort. When the store is full, or every handle to the
// pool has been dropped and the store collected, the object is simply left to
// the garbage collector. Pooled values only hold a weak pointer to the store,
// so an outstanding object never keeps a pool alive.
//
// Nothing in the package blocks: Take constructs a fresh object when the store
// is empty, TryTake reports false instead.
package objpool
