package ring

// Store defines the bounded storage contract a pool relies on. None of the
// methods block; length and emptiness are snapshots.
type Store[T any] interface {
	TryPush(v T) bool  // Appends v, false if the store is full
	TryPop() (T, bool) // Removes a value, false if the store is empty
	Len() int          // Number of stored values
	Cap() int          // Fixed capacity
	IsEmpty() bool     // Whether Len() == 0
	IsFull() bool      // Whether Len() == Cap()
}

// Ensure that Queue implements Store
var _ Store[any] = (*Queue[any])(nil)
