// SPDX-License-Identifier: Apache-2.0

// Package pool implements a fixed-capacity slot allocator with constant
// time allocation and deallocation, independent of the access pattern.
//
// A pool reserves one contiguous block of memory up front, sized for a
// fixed number of equally sized slots, and never grows. Free slots are
// threaded into an intrusive singly-linked list whose links live inside
// the free slots themselves, so both Allocate and Deallocate are a single
// list splice with no searching, no scanning and no auxiliary storage.
//
// # Basic Usage
//
//	p, err := pool.NewTyped[Data](1 << 10)
//	if err != nil {
//		return err
//	}
//
//	h, err := p.Alloc(Data{Inner: 5})
//	if err != nil {
//		// pool is full; the input value is still usable
//		return err
//	}
//	defer h.Release() // returns the slot exactly once, on every exit path
//
//	h.Get().Inner++
//
// The layout-generic Pool serves raw slot addresses instead of handles and
// leaves the occupant lifecycle entirely to the caller. It also satisfies
// the Allocator interface, so it can be plugged into any allocation-aware
// construct that works in terms of size/alignment layouts.
//
// # Exhaustion
//
// The backing reservation is fixed at construction. When no free slots
// remain, Allocate fails with ErrPoolExhausted; this is a normal outcome,
// not a defect. Callers may retry after freeing, use another pool, or
// report upward. The pool never allocates past its capacity.
//
// # Thread Safety
//
// Pools are not safe for concurrent use. The free-list head and the slot
// links are plain memory; concurrent Allocate/Deallocate calls corrupt the
// list. Callers needing concurrency must guard the whole pool externally
// or use one pool per goroutine.
//
// # Contract Violations
//
// Deallocate always verifies, in constant time, that the address is owned
// by the pool and slot-aligned, and panics otherwise. Double frees and
// use-after-free on the raw Pool surface are not detected and corrupt the
// free list; the typed Handle prevents double release structurally. Any
// operation on a released pool panics.
//
// # Garbage Collector Visibility
//
// Slot memory is a plain byte reservation and is not scanned by the
// garbage collector. Values that contain pointers must have their
// referents kept alive elsewhere for as long as they live in the pool.
package pool
