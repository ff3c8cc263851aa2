package reset

// Map is an associative map whose buckets survive a reset. The zero value is
// a nil map: reads work, Set allocates on first use.
type Map[K comparable, V any] map[K]V

// Set stores v under k, allocating the map if needed
func (m *Map[K, V]) Set(k K, v V) {
	if *m == nil {
		*m = make(Map[K, V])
	}
	(*m)[k] = v
}

// Get returns the value stored under k
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// Delete removes k
func (m Map[K, V]) Delete(k K) {
	delete(m, k)
}

// Len returns the number of entries
func (m Map[K, V]) Len() int {
	return len(m)
}

// Reset removes every entry and keeps the allocated buckets
func (m Map[K, V]) Reset() {
	clear(m)
}

// Set is a set of comparable values backed by a map. The zero value is ready
// to use.
type Set[E comparable] map[E]struct{}

// Add inserts v and reports whether it was not already present
func (s *Set[E]) Add(v E) bool {
	if *s == nil {
		*s = make(Set[E])
	}
	if _, ok := (*s)[v]; ok {
		return false
	}
	(*s)[v] = struct{}{}
	return true
}

// Has reports whether v is in the set
func (s Set[E]) Has(v E) bool {
	_, ok := s[v]
	return ok
}

// Remove deletes v and reports whether it was present
func (s Set[E]) Remove(v E) bool {
	if _, ok := s[v]; !ok {
		return false
	}
	delete(s, v)
	return true
}

// Len returns the number of members
func (s Set[E]) Len() int {
	return len(s)
}

// Reset removes every member and keeps the allocated buckets
func (s Set[E]) Reset() {
	clear(s)
}
