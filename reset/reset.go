// Package reset defines how pooled values are emptied before they go back to
// a pool.
//
// A reset returns a value to a state that is equivalent to a freshly
// constructed one while keeping whatever memory it has already allocated:
// slices are truncated rather than set to nil, maps are cleared rather than
// replaced. Types whose clear operation releases memory, such as
// strings.Builder (its Reset drops the buffer) or tree-backed containers, must
// not implement Resetter, since pooling them saves nothing.
//
// Reset never panics on the container types in this package. Slice, Bytes,
// Deque, Heap, Path and the Tuple aggregates tolerate a nil receiver; Map and
// Set reset by value and tolerate a nil map.
package reset

//go:generate go run ../cmd/resetgen -tuples 13 -pkg reset -o tuple_gen.go

// Resetter is implemented by values that can be emptied in place while
// keeping their allocations. Reset must be idempotent.
type Resetter interface {
	Reset()
}

// Func resets the value pointed to.
type Func[T any] func(*T)

// For returns the reset func for a T whose pointer implements Resetter.
//
//	r := reset.For[bytes.Buffer]()
func For[T any, PT interface {
	*T
	Resetter
}]() Func[T] {
	return func(v *T) {
		PT(v).Reset()
	}
}

// Deref returns a reset func that passes through one level of indirection:
// T itself is a pointer (or other comparable reference) implementing
// Resetter. Nil values are skipped.
func Deref[T interface {
	comparable
	Resetter
}]() Func[T] {
	return func(v *T) {
		var zero T
		if *v == zero {
			return
		}
		(*v).Reset()
	}
}
