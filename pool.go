package objpool

import (
	"runtime"
	"sync/atomic"
	"weak"

	"go.uber.org/zap"

	"github.com/geseq/objpool/pkg/ring"
	"github.com/geseq/objpool/reset"
)

// store is the state shared by every handle of one pool. Pool handles keep it
// alive; Pooled values only hold a weak pointer to it.
type store[T any] struct {
	q       *ring.Queue[*T]
	reset   reset.Func[T]
	ctor    func() *T
	self    weak.Pointer[store[T]]
	inUse   atomic.Int64
	stats   counters
	reclaim bool
	name    string
	log     *zap.Logger
}

// Pool is a bounded, thread-safe pool of *T.
//
// A Pool is a handle: Clone returns another handle to the same store, and the
// store stays alive as long as any handle is reachable. Objects taken from the
// pool are wrapped in a Pooled value and go back to the store, reset, when
// the Pooled value is released.
type Pool[T any] struct {
	s *store[T]
}

// New creates a pool of capacity objects of a type whose pointer implements
// reset.Resetter. The store is allocated in full; it starts empty unless
// WithPrefill is given.
//
// New panics with ErrZeroCapacity if capacity is not positive.
//
//	p := objpool.New[bytes.Buffer](64)
func New[T any, PT interface {
	*T
	reset.Resetter
}](capacity int, opts ...Option) *Pool[T] {
	return NewFunc(capacity, reset.For[T, PT](), opts...)
}

// NewFunc creates a pool that resets returned objects with r.
//
// NewFunc panics with ErrZeroCapacity if capacity is not positive and with
// ErrNilReset if r is nil.
func NewFunc[T any](capacity int, r reset.Func[T], opts ...Option) *Pool[T] {
	if capacity <= 0 {
		panic(ErrZeroCapacity)
	}
	if r == nil {
		panic(ErrNilReset)
	}

	cfg := &config{}
	options(defaultOpts).applyTo(cfg)
	options(opts).applyTo(cfg)

	s := &store[T]{
		q:       ring.New[*T](capacity),
		reset:   r,
		reclaim: cfg.reclaim,
		name:    cfg.name,
		log:     cfg.log.With(zap.String("pool", cfg.name)),
	}
	s.self = weak.Make(s)

	if cfg.ctor != nil {
		ctor, ok := cfg.ctor.(func() *T)
		if !ok {
			panic(ErrConstructorType)
		}
		s.ctor = ctor
	}

	n := min(cfg.prefill, capacity)
	for i := 0; i < n; i++ {
		s.q.TryPush(s.construct())
	}

	s.log.Debug("pool created", zap.Int("capacity", capacity), zap.Int("prefill", max(n, 0)), zap.Bool("reclaim", s.reclaim))

	return &Pool[T]{s: s}
}

// Take returns an object from the pool, constructing a new one if none are
// available. It never blocks.
func (p *Pool[T]) Take() *Pooled[T] {
	s := p.s
	obj, ok := s.q.TryPop()
	if ok {
		s.stats.hits.Add(1)
	} else {
		obj = s.construct()
		s.stats.misses.Add(1)
	}

	return s.wrap(obj)
}

// TryTake returns an object from the pool, or false if none are available.
// It never constructs an object.
func (p *Pool[T]) TryTake() (*Pooled[T], bool) {
	s := p.s
	obj, ok := s.q.TryPop()
	if !ok {
		return nil, false
	}
	s.stats.hits.Add(1)

	return s.wrap(obj), true
}

// Attach wraps obj as if it had been taken from this pool. It does not consume
// a store slot; on release obj competes for one like any other object.
//
// Attach panics with ErrNilObject if obj is nil.
func (p *Pool[T]) Attach(obj *T) *Pooled[T] {
	if obj == nil {
		panic(ErrNilObject)
	}
	p.s.stats.attached.Add(1)

	return p.s.wrap(obj)
}

// Clone returns another handle to the same pool
func (p *Pool[T]) Clone() *Pool[T] {
	return &Pool[T]{s: p.s}
}

// Same reports whether p and o are handles to the same pool
func (p *Pool[T]) Same(o *Pool[T]) bool {
	return o != nil && p.s == o.s
}

// Name returns the pool name
func (p *Pool[T]) Name() string {
	return p.s.name
}

// Len returns the number of spare objects in the pool
func (p *Pool[T]) Len() int {
	return p.s.q.Len()
}

// Cap returns the maximum number of spare objects the pool holds
func (p *Pool[T]) Cap() int {
	return p.s.q.Cap()
}

// SpareCap returns how many more objects the pool can hold
func (p *Pool[T]) SpareCap() int {
	return max(p.Cap()-p.Len(), 0)
}

// IsEmpty reports whether the pool holds no spare objects
func (p *Pool[T]) IsEmpty() bool {
	return p.s.q.IsEmpty()
}

// IsFull reports whether the pool is at capacity
func (p *Pool[T]) IsFull() bool {
	return p.s.q.IsFull()
}

// InUse returns the number of outstanding handles: taken or attached and not
// yet released or detached. Handles whose pool is gone are not counted
// anywhere.
func (p *Pool[T]) InUse() int {
	return int(p.s.inUse.Load())
}

// Stats returns a snapshot of the pool counters
func (p *Pool[T]) Stats() Stats {
	return p.s.stats.snapshot()
}

func (s *store[T]) construct() *T {
	if s.ctor == nil {
		return new(T)
	}

	obj := s.ctor()
	if obj == nil {
		panic(ErrNilObject)
	}
	return obj
}

func (s *store[T]) wrap(obj *T) *Pooled[T] {
	v := &Pooled[T]{obj: obj, pool: s.self}
	s.inUse.Add(1)

	if s.reclaim {
		v.cleanup = runtime.AddCleanup(v, reclaim[T], orphan[T]{obj: obj, pool: s.self})
		v.tracked = true
	}

	return v
}

// put resets obj and pushes it back, dropping it if the store is full.
func (s *store[T]) put(obj *T) {
	s.reset(obj)

	if s.q.TryPush(obj) {
		s.stats.returned.Add(1)
		return
	}

	s.stats.discarded.Add(1)
	if ce := s.log.Check(zap.DebugLevel, "pool full, object discarded"); ce != nil {
		ce.Write(zap.Int("capacity", s.q.Cap()))
	}
}

// orphan is what the runtime cleanup of an unreleased handle needs. It must
// not reference the handle itself.
type orphan[T any] struct {
	obj  *T
	pool weak.Pointer[store[T]]
}

func reclaim[T any](o orphan[T]) {
	s := o.pool.Value()
	if s == nil {
		return
	}

	s.inUse.Add(-1)
	s.stats.reclaimed.Add(1)
	if ce := s.log.Check(zap.DebugLevel, "reclaimed unreleased object"); ce != nil {
		ce.Write()
	}

	s.put(o.obj)
}
