package store

import (
	"sync/atomic"
	"time"
)

// Clock supplies the current time. Stores take it at construction so tests
// can drive timestamps deterministically.
type Clock func() time.Time

// idAllocator hands out unique, monotonically increasing identifiers.
// Safe under concurrent create calls. A durable store would swap this for a
// persistence-backed sequence.
type idAllocator struct {
	last atomic.Int64
}

// Next returns the next identifier, starting at 1.
func (a *idAllocator) Next() int64 {
	return a.last.Add(1)
}
