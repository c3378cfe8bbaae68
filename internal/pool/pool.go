// Package pool provides typed object pooling for go-grammar
// Used by the help layout to reuse line buffers across rows
package pool

import (
	"strings"
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// NewPool creates a pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset on Get
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxRetainedBuilder keeps pathological help text from pinning memory
const maxRetainedBuilder = 16 << 10

var builders = NewPoolWithReset(
	func() *strings.Builder { return new(strings.Builder) },
	func(b *strings.Builder) { b.Reset() },
)

// GetBuilder returns an empty strings.Builder from the global pool
func GetBuilder() *strings.Builder {
	return builders.Get()
}

// PutBuilder returns b to the global pool
func PutBuilder(b *strings.Builder) {
	if b == nil || b.Cap() > maxRetainedBuilder {
		return
	}
	builders.Put(b)
}
