// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"errors"
	"unsafe"
)

var (
	// ErrPoolExhausted is returned by Allocate when no free slots remain.
	// Exhaustion is a normal outcome of a fixed-capacity pool; callers may
	// retry after freeing a slot or fall back to another memory source.
	ErrPoolExhausted = errors.New("pool: no free slots")

	// ErrReservationOverflow is returned by New when capacity×stride does
	// not fit in the address space.
	ErrReservationOverflow = errors.New("pool: reservation size overflows address space")

	// ErrInvalidCapacity is returned by New for a negative capacity.
	ErrInvalidCapacity = errors.New("pool: capacity must not be negative")

	// ErrInvalidAlignment is returned by New when the slot alignment is not
	// a power of two.
	ErrInvalidAlignment = errors.New("pool: alignment must be a power of two")

	// ErrLayoutMismatch is returned by Alloc when the requested layout does
	// not fit the pool's slot layout.
	ErrLayoutMismatch = errors.New("pool: layout does not fit slot layout")
)

// Pool is a fixed-capacity slot allocator. It reserves capacity slots of a
// fixed size and alignment up front and serves them with O(1) Allocate and
// Deallocate via an intrusive free list. The reservation never grows.
//
// Returned slot addresses are borrowed: the caller constructs its value
// into the slot and is responsible for tearing it down before Deallocate.
// A Pool is not safe for concurrent use.
type Pool struct {
	arena arena
	free  freeList
	live  int
	align uintptr // effective slot alignment
}

// New creates a pool with room for capacity slots of slotSize bytes aligned
// to slotAlignment. The size is rounded up so a free-list link fits in any
// slot; the alignment must be a power of two.
func New(capacity int, slotSize, slotAlignment uintptr) (*Pool, error) {
	a, err := newArena(capacity, slotSize, slotAlignment)
	if err != nil {
		return nil, err
	}
	_, align := slotLayout(slotSize, slotAlignment)
	p := &Pool{arena: a, align: align}
	p.free.thread(&p.arena)
	return p, nil
}

// Capacity returns the fixed number of slots, set at construction.
func (p *Pool) Capacity() int {
	return p.arena.capacity
}

// Len returns the number of currently occupied slots.
func (p *Pool) Len() int {
	return p.live
}

// IsEmpty reports whether no slots are occupied.
func (p *Pool) IsEmpty() bool {
	return p.live == 0
}

// IsFull reports whether every slot is occupied.
func (p *Pool) IsFull() bool {
	return p.live == p.arena.capacity
}

// Stride returns the per-slot byte stride: the slot size rounded up to the
// effective slot alignment. Consecutive slot addresses differ by exactly
// one stride.
func (p *Pool) Stride() uintptr {
	return p.arena.stride
}

// Allocate pops one slot off the free list and returns its address, which
// is writable for the slot size and aligned to the slot alignment. It fails
// with ErrPoolExhausted when the pool is full.
func (p *Pool) Allocate() (unsafe.Pointer, error) {
	p.panicIfReleased()
	index, ok := p.free.pop(&p.arena)
	if !ok {
		return nil, ErrPoolExhausted
	}
	p.live++
	return p.arena.slotAddr(index), nil
}

// Deallocate pushes the slot at ptr back onto the free list. The address
// must have been returned by Allocate on this pool and not freed since; the
// occupant must already be torn down by the caller. Ownership and slot
// alignment of ptr are always verified, a double free is not.
func (p *Pool) Deallocate(ptr unsafe.Pointer) {
	p.panicIfReleased()
	index, ok := p.arena.slotIndex(ptr)
	if !ok {
		panic("pool: deallocate of address not owned by this pool")
	}
	p.free.push(&p.arena, index)
	p.live--
}

// Release drops the backing reservation in one step. The pool is unusable
// afterwards; any further operation panics. No slot address may be used
// after Release.
func (p *Pool) Release() {
	p.arena.release()
}

func (p *Pool) panicIfReleased() {
	if p.arena.released() {
		panic("pool: use after Release()")
	}
}
