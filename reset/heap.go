package reset

import "cmp"

// Heap is a max-priority queue over an ordered element type. Pop always
// returns the largest element. The zero value is ready to use.
type Heap[E cmp.Ordered] struct {
	items []E
}

// Push inserts v
func (h *Heap[E]) Push(v E) {
	h.items = append(h.items, v)
	up(h.items, len(h.items)-1, cmp.Less[E])
}

// Pop removes and returns the largest element
func (h *Heap[E]) Pop() (E, bool) {
	return pop(&h.items, cmp.Less[E])
}

// Peek returns the largest element without removing it
func (h *Heap[E]) Peek() (E, bool) {
	return peek(h.items)
}

// Len returns the number of elements
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// Cap returns the capacity of the backing array
func (h *Heap[E]) Cap() int {
	return cap(h.items)
}

// Reset removes every element and keeps the backing array
func (h *Heap[E]) Reset() {
	if h == nil {
		return
	}
	clear(h.items)
	h.items = h.items[:0]
}

// HeapFunc is a max-priority queue ordered by a less function, for element
// types such as records that are not cmp.Ordered. Pop returns the element
// that no other element is greater than under less.
//
// The zero value has no ordering; create one with NewHeapFunc. When pooling
// a HeapFunc, pass NewHeapFunc as the pool constructor. Reset keeps the
// ordering.
type HeapFunc[E any] struct {
	items []E
	less  func(a, b E) bool
}

// NewHeapFunc returns an empty heap ordered by less
func NewHeapFunc[E any](less func(a, b E) bool) *HeapFunc[E] {
	return &HeapFunc[E]{less: less}
}

// Push inserts v
func (h *HeapFunc[E]) Push(v E) {
	h.items = append(h.items, v)
	up(h.items, len(h.items)-1, h.less)
}

// Pop removes and returns the greatest element
func (h *HeapFunc[E]) Pop() (E, bool) {
	return pop(&h.items, h.less)
}

// Peek returns the greatest element without removing it
func (h *HeapFunc[E]) Peek() (E, bool) {
	return peek(h.items)
}

// Len returns the number of elements
func (h *HeapFunc[E]) Len() int {
	return len(h.items)
}

// Cap returns the capacity of the backing array
func (h *HeapFunc[E]) Cap() int {
	return cap(h.items)
}

// Reset removes every element, keeping the backing array and the ordering
func (h *HeapFunc[E]) Reset() {
	if h == nil {
		return
	}
	clear(h.items)
	h.items = h.items[:0]
}

func peek[E any](items []E) (E, bool) {
	if len(items) == 0 {
		var zero E
		return zero, false
	}
	return items[0], true
}

func pop[E any](items *[]E, less func(a, b E) bool) (E, bool) {
	var zero E
	s := *items
	n := len(s) - 1
	if n < 0 {
		return zero, false
	}

	top := s[0]
	s[0] = s[n]
	s[n] = zero
	*items = s[:n]
	down(*items, 0, less)

	return top, true
}

func up[E any](items []E, i int, less func(a, b E) bool) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(items[parent], items[i]) {
			return
		}
		items[parent], items[i] = items[i], items[parent]
		i = parent
	}
}

func down[E any](items []E, i int, less func(a, b E) bool) {
	n := len(items)
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && less(items[largest], items[l]) {
			largest = l
		}
		if r < n && less(items[largest], items[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		items[i], items[largest] = items[largest], items[i]
		i = largest
	}
}
