// Package pool reuses the scratch buffers used while rendering paths.
package pool

import (
	"bytes"
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called before an object is handed out again
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T) //nolint:forcetypeassert // New always returns *T
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxBufferCap keeps one very long path from pinning a large buffer
const maxBufferCap = 4096

var buffers = NewPoolWithReset(
	func() *bytes.Buffer { return &bytes.Buffer{} },
	func(b *bytes.Buffer) { b.Reset() },
)

// GetBuffer returns an empty buffer
func GetBuffer() *bytes.Buffer { return buffers.Get() }

// PutBuffer releases b. Buffers that grew past maxBufferCap are dropped.
func PutBuffer(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxBufferCap {
		return
	}
	buffers.Put(b)
}
