package objpool

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/geseq/objpool/reset"
)

type point struct {
	X, Y int
}

func (p *point) Reset() {
	*p = point{}
}

func TestNewPool(t *testing.T) {
	for _, c := range []int{1, 2, 3, 10, 69, 1024} {
		p := New[point](c)
		assert.Equal(t, c, p.Cap())
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, c, p.SpareCap())
		assert.Equal(t, 0, p.InUse())
		assert.True(t, p.IsEmpty())
		assert.False(t, p.IsFull())
		assert.Equal(t, "objpool", p.Name())
	}
}

func TestNewPoolZeroCapacity(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroCapacity, func() { New[point](0) })
	assert.PanicsWithValue(t, ErrZeroCapacity, func() { New[point](-3) })
	assert.PanicsWithValue(t, ErrNilReset, func() { NewFunc[int](1, nil) })
}

func TestTakeAndRelease(t *testing.T) {
	p := New[point](5)

	var held []*Pooled[point]
	for i := 0; i < 3; i++ {
		held = append(held, p.Take())
	}
	assert.Equal(t, 3, p.InUse())
	assert.Equal(t, 0, p.Len())

	for _, v := range held {
		v.Release()
	}
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 0, p.InUse())
	assert.Equal(t, 2, p.SpareCap())

	st := p.Stats()
	assert.EqualValues(t, 3, st.Misses)
	assert.EqualValues(t, 0, st.Hits)
	assert.EqualValues(t, 3, st.Returned)
}

func TestReleaseResetsAndKeepsCapacity(t *testing.T) {
	p := New[reset.Slice[int]](1)

	v := p.Take()
	for i := 0; i < 100; i++ {
		v.Value().Append(i)
	}
	capBefore := v.Value().Cap()
	require.GreaterOrEqual(t, capBefore, 100)
	v.Release()

	v = p.Take()
	defer v.Release()
	assert.Equal(t, 0, v.Value().Len())
	assert.GreaterOrEqual(t, v.Value().Cap(), capBefore)
	assert.EqualValues(t, 1, p.Stats().Hits)
}

func TestReleaseTwiceIsNoop(t *testing.T) {
	p := New[point](2)
	v := p.Take()
	v.Release()
	v.Release()

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0, p.InUse())
	assert.True(t, v.Detached())
	assert.PanicsWithValue(t, ErrDetached, func() { v.Value() })
}

func TestStringScenario(t *testing.T) {
	p := New[reset.Bytes](2)

	a := p.Take()
	b := p.Take()
	assert.Equal(t, 2, p.InUse())
	assert.Equal(t, 0, p.Len())

	a.Value().WriteString("hello")
	assert.Equal(t, "hello", a.String())
	a.Release()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 1, p.InUse())

	c := p.Take()
	assert.Equal(t, "", c.Value().String())
	assert.Equal(t, 2, p.InUse())
	assert.Equal(t, 0, p.Len())

	b.Release()
	assert.Equal(t, 1, p.InUse())
	assert.Equal(t, 1, p.Len())
	c.Release()
}

func TestTryTake(t *testing.T) {
	p := New[reset.Bytes](1)

	_, ok := p.TryTake()
	assert.False(t, ok)
	assert.EqualValues(t, 0, p.Stats().Misses, "TryTake must never construct")

	v := p.Take()
	v.Value().WriteString("dirty")
	v.Release()

	v, ok = p.TryTake()
	require.True(t, ok)
	assert.Equal(t, "", v.Value().String())

	_, ok = p.TryTake()
	assert.False(t, ok)
	v.Release()
}

func TestDetach(t *testing.T) {
	p := New[point](4)

	v := p.Take()
	v.Value().X = 7
	assert.Equal(t, 1, p.InUse())

	obj := v.Detach()
	assert.Equal(t, point{X: 7}, *obj)
	assert.Equal(t, 0, p.InUse())
	assert.True(t, v.Detached())
	assert.EqualValues(t, 1, p.Stats().Detached)

	assert.PanicsWithValue(t, ErrDetached, func() { v.Value() })
	assert.PanicsWithValue(t, ErrDetached, func() { v.Detach() })
	assert.PanicsWithValue(t, ErrDetached, func() { _ = v.String() })

	// dropping a detached handle never reaches the pool
	v.Release()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.InUse())
	assert.Equal(t, point{X: 7}, *obj)

	_, ok := v.Pool()
	assert.True(t, ok, "the pool is still alive")
}

func TestSaturation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := New[point](3, WithName("points"), WithLogger(zap.New(core)))

	var held []*Pooled[point]
	for i := 0; i < 4; i++ {
		held = append(held, p.Take())
	}
	for _, v := range held {
		v.Release()
	}

	assert.Equal(t, 3, p.Len())
	assert.True(t, p.IsFull())
	assert.Equal(t, 0, p.SpareCap())
	assert.Equal(t, 0, p.InUse())
	assert.EqualValues(t, 1, p.Stats().Discarded)

	discarded := logs.FilterMessage("pool full, object discarded")
	require.Equal(t, 1, discarded.Len())
	assert.Equal(t, "points", discarded.All()[0].ContextMap()["pool"])
}

func TestAttach(t *testing.T) {
	p := New[point](1)

	v := p.Attach(&point{X: 1, Y: 2})
	assert.Equal(t, 1, p.InUse())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, point{X: 1, Y: 2}, *v.Value())

	v.Release()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0, p.InUse())

	// competes for a slot like any other object
	w := p.Attach(&point{X: 3})
	w.Release()
	assert.Equal(t, 1, p.Len())
	assert.EqualValues(t, 1, p.Stats().Discarded)
	assert.EqualValues(t, 2, p.Stats().Attached)

	got, ok := p.TryTake()
	require.True(t, ok)
	assert.Equal(t, point{}, *got.Value())

	assert.PanicsWithValue(t, ErrNilObject, func() { p.Attach(nil) })
}

func TestClone(t *testing.T) {
	p := New[point](4)
	q := p.Clone()

	assert.True(t, p.Same(q))
	assert.False(t, p.Same(New[point](4)))
	assert.False(t, p.Same(nil))

	v := q.Take()
	assert.Equal(t, 1, p.InUse())
	v.Release()
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 1, q.Len())

	w := p.Take()
	back, ok := w.Pool()
	require.True(t, ok)
	assert.True(t, back.Same(q))
	w.Release()
}

func TestWithNewAndPrefill(t *testing.T) {
	calls := 0
	p := New[reset.Slice[byte]](4,
		WithNew(func() *reset.Slice[byte] {
			calls++
			s := make(reset.Slice[byte], 0, 512)
			return &s
		}),
		WithPrefill(10),
	)

	assert.Equal(t, 4, calls, "prefill is capped at capacity")
	assert.Equal(t, 4, p.Len())
	assert.True(t, p.IsFull())

	v := p.Take()
	assert.Equal(t, 512, v.Value().Cap())
	v.Release()
	assert.EqualValues(t, 1, p.Stats().Hits)
	assert.EqualValues(t, 0, p.Stats().Misses)
}

func TestWithNewTypeMismatch(t *testing.T) {
	assert.PanicsWithValue(t, ErrConstructorType, func() {
		New[point](1, WithNew(func() *reset.Bytes { return new(reset.Bytes) }))
	})

	p := New[point](1, WithNew(func() *point { return nil }))
	assert.PanicsWithValue(t, ErrNilObject, func() { p.Take() })
}

func orphanedHandle() *Pooled[reset.Bytes] {
	p := New[reset.Bytes](1)
	v := p.Take()
	v.Value().WriteString("orphan")
	return v
}

func TestPooledOutlivesPool(t *testing.T) {
	v := orphanedHandle()

	require.Eventually(t, func() bool {
		runtime.GC()
		_, ok := v.Pool()
		return !ok
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, "orphan", v.Value().String())
	assert.NotPanics(t, func() { v.Release() })
	assert.True(t, v.Detached())
}

func leak(p *Pool[reset.Bytes]) {
	v := p.Take()
	v.Value().WriteString("leaked")
}

func TestReclaim(t *testing.T) {
	p := New[reset.Bytes](2, WithReclaim(true))

	leak(p)
	assert.Equal(t, 1, p.InUse())

	require.Eventually(t, func() bool {
		runtime.GC()
		return p.InUse() == 0
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return p.Len() == 1 }, time.Second, time.Millisecond)
	assert.EqualValues(t, 1, p.Stats().Reclaimed)

	v, ok := p.TryTake()
	require.True(t, ok)
	assert.Equal(t, "", v.Value().String())
	v.Release()
}

func TestReclaimSkipsReleasedHandles(t *testing.T) {
	p := New[reset.Bytes](2, WithReclaim(true))

	v := p.Take()
	v.Release()
	v = nil

	runtime.GC()
	runtime.GC()

	assert.EqualValues(t, 0, p.Stats().Reclaimed)
	assert.EqualValues(t, 1, p.Stats().Returned)
	assert.Equal(t, 0, p.InUse())
	assert.Equal(t, 1, p.Len())
}

func TestReclaimKeepsReachableHandles(t *testing.T) {
	p := New[reset.Bytes](2, WithReclaim(true))

	v := p.Take()
	obj := v.Value()
	_, _ = obj.WriteString("held")

	assert.Never(t, func() bool {
		runtime.GC()
		return p.Stats().Reclaimed > 0 || p.Len() > 0
	}, 200*time.Millisecond, 10*time.Millisecond)

	assert.Equal(t, 1, p.InUse())
	assert.Equal(t, "held", obj.String())
	_, ok := p.TryTake()
	assert.False(t, ok, "a held object must not be handed out again")

	runtime.KeepAlive(v)
	v.Release()
	assert.EqualValues(t, 0, p.Stats().Reclaimed)
	assert.EqualValues(t, 1, p.Stats().Returned)
}

func TestConcurrentTakeRelease(t *testing.T) {
	const (
		workers    = 32
		iterations = 2000
		capacity   = 16
	)

	p := New[reset.Slice[int]](capacity, WithPrefill(capacity))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v := p.Take()
				if v.Value().Len() != 0 {
					t.Errorf("object not reset: len %d", v.Value().Len())
				}
				v.Value().Append(id, i)
				if i%7 == 0 {
					v.Detach()
					continue
				}
				v.Release()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 0, p.InUse())
	assert.LessOrEqual(t, p.Len(), capacity)

	st := p.Stats()
	assert.EqualValues(t, workers*iterations, st.Hits+st.Misses)
	assert.EqualValues(t, workers*iterations, st.Returned+st.Discarded+st.Detached)
}

func BenchmarkTakeRelease(b *testing.B) {
	p := New[reset.Slice[int]](1024, WithPrefill(1024))
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			v := p.Take()
			v.Value().Append(1, 2, 3)
			v.Release()
		}
	})
}

func BenchmarkTakeReleaseReclaim(b *testing.B) {
	p := New[reset.Slice[int]](1024, WithPrefill(1024), WithReclaim(true))
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			v := p.Take()
			v.Value().Append(1, 2, 3)
			v.Release()
		}
	})
}
