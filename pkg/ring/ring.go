package ring

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// slot holds one value and the stamp that tells producers and consumers
// whether the slot is free for the current lap.
type slot[T any] struct {
	stamp atomic.Uint64
	value T
}

// Queue is a bounded lock-free multi-producer multi-consumer queue.
//
// Head and tail are packed as lap|index, where a lap is the smallest power of
// two strictly greater than the capacity. Every slot carries a stamp equal to
// the head/tail value at which it may next be written (stamp == tail) or read
// (stamp == head+1).
type Queue[T any] struct {
	_        cpu.CacheLinePad
	head     atomic.Uint64
	_        cpu.CacheLinePad
	tail     atomic.Uint64
	_        cpu.CacheLinePad
	capacity uint64
	oneLap   uint64
	slots    []slot[T]
	_        cpu.CacheLinePad
}

// New creates a queue holding at most capacity values. The slot array is
// allocated up front.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}

	q := &Queue[T]{
		capacity: uint64(capacity),
		oneLap:   roundUpNextPowerOfTwo(uint64(capacity) + 1),
		slots:    make([]slot[T], capacity),
	}
	for i := range q.slots {
		q.slots[i].stamp.Store(uint64(i))
	}

	return q
}

// TryPush appends v to the queue. It returns false without blocking when the
// queue is full.
func (q *Queue[T]) TryPush(v T) bool {
	tail := q.tail.Load()

	for {
		index := tail & (q.oneLap - 1)
		lap := tail &^ (q.oneLap - 1)

		newTail := tail + 1
		if index+1 >= q.capacity {
			newTail = lap + q.oneLap
		}

		s := &q.slots[index]
		stamp := s.stamp.Load()

		switch {
		case tail == stamp:
			if q.tail.CompareAndSwap(tail, newTail) {
				s.value = v
				s.stamp.Store(tail + 1)
				return true
			}
			tail = q.tail.Load()
		case stamp+q.oneLap == tail+1:
			// slot still holds last lap's value
			if q.head.Load()+q.oneLap == tail {
				return false
			}
			runtime.Gosched()
			tail = q.tail.Load()
		default:
			// another producer is mid-write
			runtime.Gosched()
			tail = q.tail.Load()
		}
	}
}

// TryPop removes the value at the front of the queue. It returns false without
// blocking when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	head := q.head.Load()

	for {
		index := head & (q.oneLap - 1)
		lap := head &^ (q.oneLap - 1)

		s := &q.slots[index]
		stamp := s.stamp.Load()

		switch {
		case head+1 == stamp:
			newHead := head + 1
			if index+1 >= q.capacity {
				newHead = lap + q.oneLap
			}

			if q.head.CompareAndSwap(head, newHead) {
				v := s.value
				var zero T
				s.value = zero
				s.stamp.Store(head + q.oneLap)
				return v, true
			}
			head = q.head.Load()
		case stamp == head:
			if q.tail.Load() == head {
				var zero T
				return zero, false
			}
			runtime.Gosched()
			head = q.head.Load()
		default:
			// another consumer is mid-read
			runtime.Gosched()
			head = q.head.Load()
		}
	}
}

// Len returns the number of values in the queue
func (q *Queue[T]) Len() int {
	for {
		tail := q.tail.Load()
		head := q.head.Load()

		if q.tail.Load() != tail {
			continue
		}

		hix := head & (q.oneLap - 1)
		tix := tail & (q.oneLap - 1)

		switch {
		case hix < tix:
			return int(tix - hix)
		case hix > tix:
			return int(q.capacity - hix + tix)
		case tail == head:
			return 0
		default:
			return int(q.capacity)
		}
	}
}

// Cap returns the fixed capacity of the queue
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// IsEmpty checks whether the queue is empty
func (q *Queue[T]) IsEmpty() bool {
	head := q.head.Load()
	tail := q.tail.Load()
	return tail == head
}

// IsFull checks whether the queue is full
func (q *Queue[T]) IsFull() bool {
	tail := q.tail.Load()
	head := q.head.Load()
	return head+q.oneLap == tail
}

// roundUpNextPowerOfTwo rounds up a number to the next power of two
func roundUpNextPowerOfTwo(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
