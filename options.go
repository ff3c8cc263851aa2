package objpool

import "go.uber.org/zap"

// Option configures a Pool at construction
type Option func(*config)

type config struct {
	name    string
	ctor    any
	prefill int
	reclaim bool
	log     *zap.Logger
}

type options []Option

func (l options) applyTo(c *config) {
	for _, opt := range l {
		opt(c)
	}
}

// defaultOpts provides list of options
var defaultOpts = []Option{
	WithName("objpool"),
	WithLogger(nil),
	WithPrefill(0),
	WithReclaim(false),
}

// WithName sets the pool name used in logs and metrics
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithNew sets the constructor used when the pool is empty and for prefill.
// Without it the pool allocates with new(T). The type must match the pool's
// element type or the pool constructor panics with ErrConstructorType.
func WithNew[T any](fn func() *T) Option {
	return func(c *config) {
		if fn == nil {
			c.ctor = nil
			return
		}
		c.ctor = fn
	}
}

// WithPrefill fills the store with n fresh objects at construction. n is
// capped at the pool capacity.
func WithPrefill(n int) Option {
	return func(c *config) { c.prefill = n }
}

// WithReclaim makes the pool register a cleanup on every handle it hands out,
// so objects whose handles are garbage collected without Release still go
// back to the store. It costs one runtime cleanup registration per Take.
//
// The cleanup tracks the handle, not the object. Keep the *Pooled value
// reachable for as long as the *T from Value is in use, by holding it or with
// runtime.KeepAlive. Once the handle is unreachable the object may be reset
// and handed to another borrower, so p.Take().Value() must never be kept on
// its own.
func WithReclaim(b bool) Option {
	return func(c *config) { c.reclaim = b }
}

// WithLogger sets the logger for debug events such as discarded returns. A nil
// logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}
