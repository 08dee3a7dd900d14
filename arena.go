// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"unsafe"
)

const (
	ptrSize  = unsafe.Sizeof(uintptr(0))
	ptrAlign = unsafe.Alignof(uintptr(0))
)

// arena is the single contiguous memory reservation backing a pool. It is
// created once, holds room for exactly capacity slots of stride bytes each,
// and is never resized. Slot addresses are stable for the arena's lifetime.
type arena struct {
	buf      []byte         // the reservation; keeps base reachable
	base     unsafe.Pointer // first slot, aligned to the slot alignment
	capacity int
	stride   uintptr
}

// slotLayout normalizes a requested slot layout. The size is rounded up so
// a free-list link fits inside every slot, and the alignment is raised to
// at least pointer alignment so the link word is always aligned.
func slotLayout(size, alignment uintptr) (stride, align uintptr) {
	if size < ptrSize {
		size = ptrSize
	}
	if alignment < ptrAlign {
		alignment = ptrAlign
	}
	return alignUp(size, alignment), alignment
}

func alignUp(n, alignment uintptr) uintptr {
	mask := alignment - 1
	return (n + mask) &^ mask
}

// newArena reserves capacity×stride bytes in one step. The reservation is
// padded by the slot alignment so the base address can be rounded up to it.
func newArena(capacity int, size, alignment uintptr) (arena, error) {
	if capacity < 0 {
		return arena{}, ErrInvalidCapacity
	}
	if alignment == 0 || alignment&(alignment-1) != 0 {
		return arena{}, ErrInvalidAlignment
	}
	stride, align := slotLayout(size, alignment)
	if stride < size {
		// Rounding the size up to the alignment wrapped around.
		return arena{}, ErrReservationOverflow
	}

	const maxInt = uintptr(^uint(0) >> 1)
	if capacity > 0 && stride > (maxInt-align)/uintptr(capacity) {
		return arena{}, ErrReservationOverflow
	}

	buf := make([]byte, uintptr(capacity)*stride+align)
	mask := align - 1
	base := unsafe.Pointer((uintptr(unsafe.Pointer(unsafe.SliceData(buf))) + mask) &^ mask)
	return arena{
		buf:      buf,
		base:     base,
		capacity: capacity,
		stride:   stride,
	}, nil
}

// slotAddr resolves a slot index to its address. The index is trusted to be
// in [0, capacity); keeping it there is the caller's invariant.
func (a *arena) slotAddr(index int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(a.base) + uintptr(index)*a.stride)
}

// slotIndex is the inverse of slotAddr. It reports false for addresses the
// arena does not own or that do not sit on a slot boundary.
func (a *arena) slotIndex(ptr unsafe.Pointer) (int, bool) {
	offset := uintptr(ptr) - uintptr(a.base)
	if offset >= uintptr(a.capacity)*a.stride || offset%a.stride != 0 {
		return 0, false
	}
	return int(offset / a.stride), true
}

// release drops the whole reservation in one step. There is no partial
// release; the arena is unusable afterwards.
func (a *arena) release() {
	a.buf = nil
	a.base = nil
}

func (a *arena) released() bool {
	return a.base == nil
}
