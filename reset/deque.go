package reset

import "github.com/gammazero/deque"

// Deque is a double-ended queue whose ring buffer survives a reset. The zero
// value is ready to use.
type Deque[E any] struct {
	deque.Deque[E]
}

// Reset removes every element and keeps the current capacity
func (d *Deque[E]) Reset() {
	if d == nil {
		return
	}
	d.Clear()
}
