// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"unsafe"
)

// Allocator is the minimal layout-aware allocation capability: request
// memory for a size/alignment layout, hand it back with the same layout.
// It lets a Pool act as a drop-in memory source for any allocation-aware
// construct.
type Allocator interface {
	// Alloc returns memory writable for size bytes and aligned to
	// alignment.
	Alloc(size, alignment uintptr) (unsafe.Pointer, error)

	// Free returns memory previously obtained from Alloc with a layout
	// that fits the one given.
	Free(ptr unsafe.Pointer, size, alignment uintptr)
}

var _ Allocator = (*Pool)(nil)

// Alloc satisfies the Allocator interface. The requested layout must fit
// the pool's slot layout: size at most the stride and alignment at most
// the slot alignment. Smaller layouts are served from a full slot.
func (p *Pool) Alloc(size, alignment uintptr) (unsafe.Pointer, error) {
	if size > p.arena.stride || alignment > p.align {
		return nil, ErrLayoutMismatch
	}
	return p.Allocate()
}

// Free satisfies the Allocator interface.
func (p *Pool) Free(ptr unsafe.Pointer, size, alignment uintptr) {
	if size > p.arena.stride || alignment > p.align {
		panic("pool: free with layout that does not fit slot layout")
	}
	p.Deallocate(ptr)
}

// Allocate allocates memory for a value of type T from the given Allocator
// and returns a typed pointer to it. The caller owns the slot and must pass
// the pointer to Deallocate when done with it.
func Allocate[T any](a Allocator) (*T, error) {
	var x T
	ptr, err := a.Alloc(unsafe.Sizeof(x), unsafe.Alignof(x))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// Deallocate returns memory obtained from Allocate to the given Allocator.
func Deallocate[T any](a Allocator, ptr *T) {
	var x T
	a.Free(unsafe.Pointer(ptr), unsafe.Sizeof(x), unsafe.Alignof(x))
}
