package objpool

import "sync/atomic"

// Stats is a snapshot of a pool's lifetime counters. Counters are read one at
// a time, so a snapshot taken under load need not be mutually consistent.
type Stats struct {
	Hits      uint64 `json:"hits"`      // objects taken from the store
	Misses    uint64 `json:"misses"`    // objects constructed because the store was empty
	Attached  uint64 `json:"attached"`  // outside objects wrapped with Attach
	Returned  uint64 `json:"returned"`  // objects pushed back into the store
	Discarded uint64 `json:"discarded"` // objects dropped because the store was full
	Detached  uint64 `json:"detached"`  // objects taken out of circulation with Detach
	Reclaimed uint64 `json:"reclaimed"` // unreleased handles returned by the garbage collector
}

type counters struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	attached  atomic.Uint64
	returned  atomic.Uint64
	discarded atomic.Uint64
	detached  atomic.Uint64
	reclaimed atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Attached:  c.attached.Load(),
		Returned:  c.returned.Load(),
		Discarded: c.discarded.Load(),
		Detached:  c.detached.Load(),
		Reclaimed: c.reclaimed.Load(),
	}
}
