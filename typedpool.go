// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"unsafe"
)

// TypedPool is a fixed-capacity pool specialized to one element type. The
// slot layout is derived from T, values are moved into their slot on Alloc,
// and every allocation is owned by a Handle that releases the slot exactly
// once.
//
// Like Pool, a TypedPool is single-threaded and never grows. Slot memory is
// not scanned by the garbage collector, so a T containing pointers must
// have its referents kept alive elsewhere while it lives in the pool.
type TypedPool[T any] struct {
	pool *Pool
}

// NewTyped creates a typed pool with room for capacity values of T.
func NewTyped[T any](capacity int) (*TypedPool[T], error) {
	var x T
	p, err := New(capacity, unsafe.Sizeof(x), unsafe.Alignof(x))
	if err != nil {
		return nil, err
	}
	return &TypedPool[T]{pool: p}, nil
}

// Alloc moves value into a newly allocated slot and returns the owning
// handle. When the pool is full it fails with ErrPoolExhausted; the
// caller's value is left untouched and stays usable.
func (p *TypedPool[T]) Alloc(value T) (*Handle[T], error) {
	ptr, err := p.pool.Allocate()
	if err != nil {
		return nil, err
	}
	slot := (*T)(ptr)
	*slot = value
	return &Handle[T]{ptr: slot, pool: p.pool}, nil
}

// Capacity returns the fixed number of slots, set at construction.
func (p *TypedPool[T]) Capacity() int {
	return p.pool.Capacity()
}

// Len returns the number of currently live handles.
func (p *TypedPool[T]) Len() int {
	return p.pool.Len()
}

// IsEmpty reports whether no slots are occupied.
func (p *TypedPool[T]) IsEmpty() bool {
	return p.pool.IsEmpty()
}

// IsFull reports whether every slot is occupied.
func (p *TypedPool[T]) IsFull() bool {
	return p.pool.IsFull()
}

// Release drops the backing reservation. No handle issued by this pool may
// still be alive; that precondition is the caller's to uphold and is not
// checked at runtime.
func (p *TypedPool[T]) Release() {
	p.pool.Release()
}

// Handle owns one occupied slot of a TypedPool. At most one handle exists
// per occupied slot, and the slot is returned to the pool exactly once, on
// the first Release.
type Handle[T any] struct {
	ptr  *T
	pool *Pool
}

// Get returns the occupant. The pointer is valid until Release; using it
// after Release panics on the handle, but pointers obtained earlier go
// stale silently.
func (h *Handle[T]) Get() *T {
	if h.pool == nil {
		panic("pool: handle used after release")
	}
	return h.ptr
}

// Release zeroes the occupant and returns its slot to the pool. A second
// Release is a no-op, so a deferred Release runs safely on every exit path.
func (h *Handle[T]) Release() {
	if h.pool == nil {
		return
	}
	var zero T
	*h.ptr = zero
	h.pool.Deallocate(unsafe.Pointer(h.ptr))
	h.ptr = nil
	h.pool = nil
}
