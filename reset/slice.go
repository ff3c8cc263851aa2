package reset

// Slice is a sequence that keeps its backing array across resets.
type Slice[E any] []E

// Append adds values to the end of the slice
func (s *Slice[E]) Append(v ...E) {
	*s = append(*s, v...)
}

// Len returns the number of elements
func (s Slice[E]) Len() int {
	return len(s)
}

// Cap returns the capacity of the backing array
func (s Slice[E]) Cap() int {
	return cap(s)
}

// Reset zeroes the elements, so they can be collected, and truncates the
// slice to length 0.
func (s *Slice[E]) Reset() {
	if s == nil {
		return
	}
	clear(*s)
	*s = (*s)[:0]
}

// Bytes is a growable byte string. It stands in for both text buffers and
// raw OS strings, which Go keeps as bytes.
type Bytes []byte

// Write appends p. It never fails.
func (b *Bytes) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

// WriteString appends s. It never fails.
func (b *Bytes) WriteString(s string) (int, error) {
	*b = append(*b, s...)
	return len(s), nil
}

// WriteByte appends c. It never fails.
func (b *Bytes) WriteByte(c byte) error {
	*b = append(*b, c)
	return nil
}

// String returns a copy of the contents
func (b Bytes) String() string {
	return string(b)
}

// Len returns the number of bytes
func (b Bytes) Len() int {
	return len(b)
}

// Cap returns the capacity of the backing array
func (b Bytes) Cap() int {
	return cap(b)
}

// Reset truncates the buffer to length 0
func (b *Bytes) Reset() {
	if b == nil {
		return
	}
	*b = (*b)[:0]
}
