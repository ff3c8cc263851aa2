package objpool

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether the objects held by a and b are equal
func Equal[T comparable](a, b *Pooled[T]) bool {
	return *a.must() == *b.must()
}

// EqualValue reports whether the object held by a equals b
func EqualValue[T comparable](a *Pooled[T], b T) bool {
	return *a.must() == b
}

// EqualFunc compares the objects held by a and b with eq. Use it for element
// types that are not comparable, such as slices and maps.
func EqualFunc[T any](a, b *Pooled[T], eq func(x, y *T) bool) bool {
	return eq(a.must(), b.must())
}

// Compare orders the objects held by a and b like cmp.Compare
func Compare[T cmp.Ordered](a, b *Pooled[T]) int {
	return cmp.Compare(*a.must(), *b.must())
}

// CompareValue orders the object held by a against b like cmp.Compare
func CompareValue[T cmp.Ordered](a *Pooled[T], b T) int {
	return cmp.Compare(*a.must(), b)
}

// Hash hashes the object held by v. Equal objects hash equally under the same
// seed, so a handle hashes like its object.
func Hash[T comparable](seed maphash.Seed, v *Pooled[T]) uint64 {
	return maphash.Comparable(seed, *v.must())
}
