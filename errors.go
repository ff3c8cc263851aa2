package objpool

import "errors"

// Contract violations. They are raised with panic, never returned: each one
// marks a programming error rather than a runtime condition.
var (
	ErrZeroCapacity    = errors.New("objpool: capacity must be more than 0")
	ErrDetached        = errors.New("objpool: object already released or detached")
	ErrNilObject       = errors.New("objpool: nil object")
	ErrNilReset        = errors.New("objpool: nil reset func")
	ErrConstructorType = errors.New("objpool: constructor type does not match pool type")
)
