// Package pool provides typed object pooling for the argv parsing engine.
// The engine classifies every token into a scratch slice before scanning;
// pooling that scratch state keeps repeated parses from reallocating it.
package pool

import "sync"

// Pool is a typed wrapper over sync.Pool.
type Pool[T any] struct {
	inner sync.Pool
}

// New creates a pool that uses newFn to build fresh values.
func New[T any](newFn func() T) *Pool[T] {
	p := &Pool[T]{}
	p.inner.New = func() any { return newFn() }
	return p
}

// Get returns a pooled or freshly built value.
func (p *Pool[T]) Get() T {
	return p.inner.Get().(T)
}

// Put returns a value to the pool. The caller must not retain references
// into it afterwards.
func (p *Pool[T]) Put(v T) {
	p.inner.Put(v)
}
